package tavily

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	var got searchBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"query":"vail snow","results":[
			{"title":"Vail Report","url":"https://www.vail.com/report","content":"12 inches","score":0.9},
			{"title":"OpenSnow","url":"https://opensnow.com/vail","content":"Storm incoming","score":0.8}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "tvly-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.Search(context.Background(), SearchRequest{Query: "vail snow"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got.APIKey != "tvly-test" || got.SearchDepth != "basic" || got.MaxResults != DefaultMaxResults {
		t.Errorf("unexpected request body %+v", got)
	}
	if len(resp.Results) != 2 || resp.Results[1].URL != "https://opensnow.com/vail" {
		t.Errorf("unexpected results %+v", resp.Results)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	c, _ := New(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	if _, err := c.Search(context.Background(), SearchRequest{Query: " "}); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"rate limited"}`))
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Search(context.Background(), SearchRequest{Query: "q"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode() != http.StatusTooManyRequests {
		t.Fatalf("expected 429 APIError, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/usage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer k" {
			t.Errorf("missing bearer token")
		}
		_, _ = w.Write([]byte(`{"key":{"usage":150,"limit":1000},"account":{"plan_usage":420,"plan_limit":1000}}`))
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "k", BaseURL: srv.URL})
	u, err := c.Usage(context.Background())
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	if u.Key.Usage != 150 || u.Account.PlanUsage != 420 {
		t.Errorf("unexpected usage %+v", u)
	}
}
