// Package nominatim is a minimal OpenStreetMap Nominatim reverse geocoder.
package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "snowboarding-assistant/1.0"
)

var ErrNotFound = errors.New("nominatim: no address for coordinates")

type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Address struct {
	DisplayName string
	City        string
	State       string
	Country     string
}

// Short renders "City, State, Country", skipping empty parts.
func (a Address) Short() string {
	var parts []string
	for _, p := range []string{a.City, a.State, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return a.DisplayName
	}
	return strings.Join(parts, ", ")
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
	}
}

// Reverse looks up the address closest to (lat, lon).
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (Address, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return Address{}, fmt.Errorf("nominatim: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("nominatim: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Address{}, fmt.Errorf("nominatim: status %d: %s", resp.StatusCode, string(raw))
	}

	var r reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Address{}, fmt.Errorf("nominatim: failed to decode response: %w", err)
	}
	if r.Error != "" || r.DisplayName == "" {
		return Address{}, ErrNotFound
	}

	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}
	return Address{
		DisplayName: r.DisplayName,
		City:        city,
		State:       r.Address.State,
		Country:     r.Address.Country,
	}, nil
}
