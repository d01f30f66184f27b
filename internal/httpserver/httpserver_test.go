package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/config"
	"snowboarding-assistant/internal/middleware"
	"snowboarding-assistant/pkg/log"
)

type stubChat struct{}

func (stubChat) SendMessage(c *gin.Context)    { c.Status(http.StatusNoContent) }
func (stubChat) GetSession(c *gin.Context)     { c.Status(http.StatusNoContent) }
func (stubChat) ResetSession(c *gin.Context)   { c.Status(http.StatusNoContent) }
func (stubChat) GrantLocation(c *gin.Context)  { c.Status(http.StatusNoContent) }
func (stubChat) RevokeLocation(c *gin.Context) { c.Status(http.StatusNoContent) }

type stubTest struct{}

func (stubTest) HandleClassify(c *gin.Context)     { c.Status(http.StatusNoContent) }
func (stubTest) HandleResetSession(c *gin.Context) { c.Status(http.StatusNoContent) }
func (stubTest) HandleHealthCheck(c *gin.Context)  { c.Status(http.StatusNoContent) }

func newServer(t *testing.T, env string, rpm int) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: env,
		Middleware:  middleware.New(l, config.CORSConfig{}, config.RateLimitConfig{RequestsPerMin: rpm, Burst: 1}),
		ChatHandler: stubChat{},
		TestHandler: stubTest{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no port", Config{Mode: gin.TestMode, ChatHandler: stubChat{}}},
		{"no mode", Config{Port: 1, ChatHandler: stubChat{}}},
		{"no chat", Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, "development", 0)
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
		}
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("%s missing request id header", path)
		}
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newServer(t, "development", 0)
	if w := serve(srv, http.MethodGet, "/api/v1/chat/sessions/abc"); w.Code != http.StatusNoContent {
		t.Errorf("chat status = %d", w.Code)
	}
	if w := serve(srv, http.MethodGet, "/test/health"); w.Code != http.StatusNoContent {
		t.Errorf("test status = %d", w.Code)
	}
	if w := serve(srv, http.MethodPost, "/webhook/telegram"); w.Code != http.StatusNotFound {
		t.Errorf("telegram route should be absent, got %d", w.Code)
	}
}

func TestTestRoutesHiddenInProduction(t *testing.T) {
	srv := newServer(t, environmentProduction, 0)
	if w := serve(srv, http.MethodGet, "/test/health"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestChatRateLimited(t *testing.T) {
	srv := newServer(t, "development", 1)
	if w := serve(srv, http.MethodGet, "/api/v1/chat/sessions/abc"); w.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", w.Code)
	}
	if w := serve(srv, http.MethodGet, "/api/v1/chat/sessions/abc"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	if w := serve(srv, http.MethodGet, "/health"); w.Code != http.StatusOK {
		t.Fatalf("health should not be limited, got %d", w.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:            18089,
		Mode:            gin.TestMode,
		ShutdownTimeout: time.Second,
		ChatHandler:     stubChat{},
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name  string
		check func(ctx context.Context) error
		want  int
	}{
		{"no check", nil, http.StatusOK},
		{"healthy", func(ctx context.Context) error { return nil }, http.StatusOK},
		{"store down", func(ctx context.Context) error { return errors.New("database is closed") }, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := New(log.NewNop(), Config{
				Port:        8080,
				Mode:        gin.TestMode,
				ReadyCheck:  tt.check,
				ChatHandler: stubChat{},
			})
			if err != nil {
				t.Fatal(err)
			}
			if w := serve(srv, http.MethodGet, "/ready"); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
