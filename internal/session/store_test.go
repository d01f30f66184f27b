package session

import (
	"errors"
	"testing"
	"time"

	"snowboarding-assistant/internal/model"
)

func TestStore_UnknownSessionIsEmpty(t *testing.T) {
	s := New(Config{})

	sess, err := s.Get("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID != "abc" || len(sess.History) != 0 || sess.Location != nil {
		t.Errorf("got %+v", sess)
	}
	if s.Len() != 0 {
		t.Error("Get should not create a session")
	}
}

func TestStore_InvalidID(t *testing.T) {
	s := New(Config{})

	if _, err := s.Get("  "); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Get error = %v", err)
	}
	if _, err := s.SaveHistory("", nil); !errors.Is(err, ErrInvalidID) {
		t.Errorf("SaveHistory error = %v", err)
	}
}

func TestStore_SaveHistoryKeepsMostRecent(t *testing.T) {
	s := New(Config{MaxHistory: 2})
	history := []model.Turn{
		{Role: model.RoleUser, Content: "one"},
		{Role: model.RoleAssistant, Content: "two"},
		{Role: model.RoleUser, Content: "three"},
	}

	if _, err := s.SaveHistory("id", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sess, _ := s.Get("id")
	if len(sess.History) != 2 || sess.History[0].Content != "two" {
		t.Errorf("history = %+v", sess.History)
	}

	sess.History[0].Content = "changed"
	again, _ := s.Get("id")
	if again.History[0].Content != "two" {
		t.Error("stored history was mutated through a returned copy")
	}
}

func TestStore_LocationConsent(t *testing.T) {
	s := New(Config{})

	sess, err := s.GrantLocation("id", model.Location{Lat: 39.64, Lon: -106.38, Address: "Vail, CO"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Location == nil || sess.Location.Address != "Vail, CO" {
		t.Fatalf("location = %+v", sess.Location)
	}

	if _, err := s.SaveHistory("id", []model.Turn{{Role: model.RoleUser, Content: "hi"}}); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get("id")
	if got.Location == nil {
		t.Error("saving history dropped the location")
	}

	revoked, _ := s.RevokeLocation("id")
	if revoked.Location != nil {
		t.Error("location still set after revoke")
	}
	if len(revoked.History) != 1 {
		t.Error("revoke dropped the history")
	}
}

func TestStore_Reset(t *testing.T) {
	s := New(Config{})
	s.SaveHistory("id", []model.Turn{{Role: model.RoleUser, Content: "hi"}})

	s.Reset("id")

	sess, _ := s.Get("id")
	if len(sess.History) != 0 {
		t.Errorf("history after reset = %+v", sess.History)
	}
}

func TestStore_Expires(t *testing.T) {
	s := New(Config{TTL: 20 * time.Millisecond})
	s.SaveHistory("id", []model.Turn{{Role: model.RoleUser, Content: "hi"}})

	time.Sleep(60 * time.Millisecond)

	sess, _ := s.Get("id")
	if len(sess.History) != 0 {
		t.Errorf("expected expired session, got %+v", sess.History)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Errorf("ids %q %q", a, b)
	}
}
