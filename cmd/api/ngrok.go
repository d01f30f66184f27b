package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"snowboarding-assistant/pkg/retry"
)

const ngrokAPIBase = "http://ngrok:4040"

var errNoTunnels = errors.New("ngrok has no active tunnels")

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL asks the local ngrok API for its public URL, preferring HTTPS.
// ngrok often starts after us, so unreachable APIs and empty tunnel lists are retried.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	policy := retry.Policy{MaxAttempts: 10, BaseDelay: 3 * time.Second, MaxDelay: 3 * time.Second, Factor: 1}

	return retry.Do(ctx, policy, func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/api/tunnels", nil)
		if err != nil {
			return "", retry.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("ngrok API not reachable: %w", err)
		}
		defer resp.Body.Close()

		var tunnels ngrokTunnelsResponse
		if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
			return "", retry.Permanent(fmt.Errorf("decode ngrok API response: %w", err))
		}
		return pickTunnel(tunnels.Tunnels)
	})
}

func pickTunnel(tunnels []ngrokTunnel) (string, error) {
	for _, t := range tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels) > 0 {
		return tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}
