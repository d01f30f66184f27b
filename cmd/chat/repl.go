package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/session"
)

const (
	replWelcome = "Welcome to the Snowboard Trip Planner AI Assistant!\n" +
		"Ask me anything about planning your snowboarding season, trips, or gear."
	replPrompt  = "\nWhat would you like to know? (or type 'quit' to exit): "
	replGoodbye = "Thanks for using the Snowboard Trip Planner! Have a great season!"
)

var errLocationUsage = errors.New("usage: /location <lat>,<lon>")

// runREPL reads one message per line until "quit", EOF or ctx ends.
func runREPL(ctx context.Context, uc chat.UseCase, in io.Reader, out io.Writer) error {
	sessionID := session.NewID()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, replWelcome)
	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, replGoodbye)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(line, "quit") {
			fmt.Fprintln(out, replGoodbye)
			return nil
		}
		if line == "" {
			continue
		}

		if err := handleLine(ctx, uc, sessionID, line, out); err != nil {
			fmt.Fprintf(out, "\nSorry, there was an error: %v\n", err)
			fmt.Fprintln(out, "Please try again.")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func handleLine(ctx context.Context, uc chat.UseCase, sessionID, line string, out io.Writer) error {
	switch {
	case strings.HasPrefix(line, "/location"):
		lat, lon, err := parseLatLon(strings.TrimSpace(strings.TrimPrefix(line, "/location")))
		if err != nil {
			return err
		}
		res, err := uc.GrantLocation(ctx, chat.GrantLocationInput{SessionID: sessionID, Lat: lat, Lon: lon})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nUsing %s for distance questions.\n", res.Location.DisplayAddress())
		return nil
	case line == "/forget":
		if _, err := uc.RevokeLocation(ctx, sessionID); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nLocation forgotten.")
		return nil
	case line == "/reset":
		if err := uc.Reset(ctx, sessionID); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nConversation cleared.")
		return nil
	}

	res, err := uc.Send(ctx, chat.SendInput{SessionID: sessionID, Message: line})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nAssistant:", res.Reply)
	return nil
}

// parseLatLon accepts "lat,lon" or "lat lon".
func parseLatLon(s string) (float64, float64, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 2 {
		return 0, 0, errLocationUsage
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, errLocationUsage
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, errLocationUsage
	}
	return lat, lon, nil
}
