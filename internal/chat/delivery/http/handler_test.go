package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/pkg/log"
)

type mockUseCase struct {
	sendInput  chat.SendInput
	sendOutput chat.SendOutput
	sendErr    error

	grantInput chat.GrantLocationInput
	grantErr   error

	reset string
}

func (m *mockUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	m.sendInput = input
	return m.sendOutput, m.sendErr
}

func (m *mockUseCase) GrantLocation(ctx context.Context, input chat.GrantLocationInput) (chat.LocationOutput, error) {
	m.grantInput = input
	if m.grantErr != nil {
		return chat.LocationOutput{}, m.grantErr
	}
	return chat.LocationOutput{
		SessionID: input.SessionID,
		Location:  &model.Location{Lat: input.Lat, Lon: input.Lon, Address: input.Address},
	}, nil
}

func (m *mockUseCase) RevokeLocation(ctx context.Context, sessionID string) (chat.LocationOutput, error) {
	return chat.LocationOutput{SessionID: sessionID}, nil
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{SessionID: sessionID}, nil
}

func (m *mockUseCase) Reset(ctx context.Context, sessionID string) error {
	m.reset = sessionID
	return nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/chat"), New(log.NewNop(), uc))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestSendMessage(t *testing.T) {
	uc := &mockUseCase{sendOutput: chat.SendOutput{SessionID: "s1", Reply: "Try Vail."}}
	r := setup(uc)

	w, env := do(t, r, http.MethodPost, "/api/v1/chat/messages", map[string]string{"session_id": "s1", "message": "where to ride?"})

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body %s", w.Code, w.Body.String())
	}
	if uc.sendInput.SessionID != "s1" || uc.sendInput.Message != "where to ride?" {
		t.Errorf("input = %+v", uc.sendInput)
	}
	var data sendResp
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Reply != "Try Vail." || data.SessionID != "s1" {
		t.Errorf("data = %+v", data)
	}
	if data.Links == nil {
		t.Error("links should serialize as an empty list")
	}
}

func TestSendMessage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		ucErr    error
		wantCode int
	}{
		{name: "missing message", body: map[string]string{}, wantCode: http.StatusBadRequest},
		{name: "empty after sanitizing", body: map[string]string{"message": "<p></p>"}, ucErr: chat.ErrEmptyMessage, wantCode: http.StatusBadRequest},
		{name: "too long", body: map[string]string{"message": "x"}, ucErr: chat.ErrMessageTooLong, wantCode: http.StatusBadRequest},
		{name: "unexpected", body: map[string]string{"message": "x"}, ucErr: errors.New("disk full"), wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(&mockUseCase{sendErr: tt.ucErr})

			w, env := do(t, r, http.MethodPost, "/api/v1/chat/messages", tt.body)

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusInternalServerError && env.Message == "disk full" {
				t.Error("internal error details leaked")
			}
		})
	}
}

func TestGrantLocation(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	w, env := do(t, r, http.MethodPut, "/api/v1/chat/sessions/s1/location", map[string]any{"lat": 39.64, "lon": -106.38})

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body %s", w.Code, w.Body.String())
	}
	if uc.grantInput.SessionID != "s1" || uc.grantInput.Lat != 39.64 {
		t.Errorf("input = %+v", uc.grantInput)
	}
	var data locationStateResp
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if !data.Granted || data.Location == nil || data.Location.Address != "39.6400, -106.3800" {
		t.Errorf("data = %+v", data)
	}
}

func TestGrantLocation_ZeroCoordinatesAreValid(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	w, _ := do(t, r, http.MethodPut, "/api/v1/chat/sessions/s1/location", map[string]any{"lat": 0, "lon": 0})

	if w.Code != http.StatusOK {
		t.Errorf("code = %d body %s", w.Code, w.Body.String())
	}
}

func TestGrantLocation_MissingCoordinates(t *testing.T) {
	r := setup(&mockUseCase{})

	w, _ := do(t, r, http.MethodPut, "/api/v1/chat/sessions/s1/location", map[string]any{"address": "Vail"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d", w.Code)
	}
}

func TestRevokeAndReset(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	w, env := do(t, r, http.MethodDelete, "/api/v1/chat/sessions/s1/location", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("revoke code = %d", w.Code)
	}
	var data locationStateResp
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Granted {
		t.Error("expected granted=false after revoke")
	}

	w, _ = do(t, r, http.MethodDelete, "/api/v1/chat/sessions/s1", nil)
	if w.Code != http.StatusOK || uc.reset != "s1" {
		t.Errorf("reset code = %d id %q", w.Code, uc.reset)
	}
}

func TestGetSession(t *testing.T) {
	r := setup(&mockUseCase{})

	w, env := do(t, r, http.MethodGet, "/api/v1/chat/sessions/s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var data sessionResp
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.SessionID != "s1" || data.History == nil || data.Location != nil {
		t.Errorf("data = %+v", data)
	}
}
