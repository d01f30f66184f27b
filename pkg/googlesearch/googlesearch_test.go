package googlesearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("cx") != "engine" || q.Get("q") != "jackson hole snow" || q.Get("num") != "3" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if q.Get("key") != "test-key" {
			t.Errorf("api key not sent")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"title":"JH Report","link":"https://www.jacksonhole.com/report","snippet":"Deep"}]}`))
	}))
	defer srv.Close()

	c, err := New(context.Background(), Config{APIKey: "test-key", EngineID: "engine", Endpoint: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := c.Search(context.Background(), "jackson hole snow", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) != 1 || res[0].URL != "https://www.jacksonhole.com/report" || res[0].Snippet != "Deep" {
		t.Errorf("unexpected results %+v", res)
	}
}

func TestSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded"}}`))
	}))
	defer srv.Close()

	c, _ := New(context.Background(), Config{APIKey: "k", EngineID: "e", Endpoint: srv.URL + "/"})
	_, err := c.Search(context.Background(), "q", 3)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode() != http.StatusTooManyRequests {
		t.Fatalf("expected 429 APIError, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	if _, err := New(context.Background(), Config{APIKey: "k"}); err == nil {
		t.Error("expected error for missing engine id")
	}
	if _, err := New(context.Background(), Config{EngineID: "e"}); err == nil {
		t.Error("expected error for missing api key")
	}
}
