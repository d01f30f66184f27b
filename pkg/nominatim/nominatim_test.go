package nominatim

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("lat") != "39.640000" || r.URL.Query().Get("lon") != "-106.380000" {
			t.Errorf("unexpected coordinates %s", r.URL.RawQuery)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("user agent is required by the usage policy")
		}
		_, _ = w.Write([]byte(`{"display_name":"Vail, Eagle County, Colorado, United States","address":{"town":"Vail","state":"Colorado","country":"United States"}}`))
	}))
	defer srv.Close()

	addr, err := New(Config{BaseURL: srv.URL}).Reverse(context.Background(), 39.64, -106.38)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if addr.Short() != "Vail, Colorado, United States" {
		t.Errorf("unexpected short address %q", addr.Short())
	}
}

func TestReverse_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).Reverse(context.Background(), 0, -140)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddressShort(t *testing.T) {
	if got := (Address{DisplayName: "Somewhere"}).Short(); got != "Somewhere" {
		t.Errorf("expected display name fallback, got %q", got)
	}
}
