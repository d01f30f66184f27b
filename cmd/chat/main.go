/*
Command chat is the terminal client for the snowboarding assistant.

Usage:

	chat                  start an interactive conversation
	chat resorts nearest  list resorts closest to a point
	chat resorts seed     load the built-in resort table into the database

Configuration is read the same way as the API server (config.yaml plus
environment variables such as GROQ_API_KEY).
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"snowboarding-assistant/config"
	"snowboarding-assistant/internal/app"
	"snowboarding-assistant/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Snowboard trip planner assistant",
		Long: `Ask about resorts, trips, gear and conditions.

Inside the conversation:
  /location <lat>,<lon>  share a position for distance questions
  /forget                stop using the shared position
  /reset                 start over
  quit                   exit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			defer a.Close()
			return runREPL(cmd.Context(), a.Chat, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of errors only")
	cmd.AddCommand(newResortsCmd(&verbose))
	return cmd
}

// bootstrap loads configuration and builds the assistant. Logs are kept to
// errors unless verbose, so they do not interleave with the conversation.
func bootstrap(ctx context.Context, verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build assistant: %w", err)
	}
	return a, nil
}
