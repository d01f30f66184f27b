package model

import "testing"

func TestAppendTurns_DoesNotMutateHistory(t *testing.T) {
	history := make([]Turn, 1, 4)
	history[0] = Turn{Role: RoleUser, Content: "hi"}

	a := AppendTurns(history, Turn{Role: RoleAssistant, Content: "a"})
	b := AppendTurns(history, Turn{Role: RoleAssistant, Content: "b"})

	if len(history) != 1 {
		t.Fatalf("history was mutated: %+v", history)
	}
	if a[1].Content != "a" || b[1].Content != "b" {
		t.Errorf("appends share a backing array: %+v %+v", a, b)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleSystem, RoleUser, RoleAssistant} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("tool").Valid() {
		t.Error("tool should not be valid")
	}
}

func TestLocationDisplayAddress(t *testing.T) {
	if got := (Location{Lat: 39.64, Lon: -106.38}).DisplayAddress(); got != "39.6400, -106.3800" {
		t.Errorf("unexpected coordinate fallback %q", got)
	}
	if got := (Location{Address: "Vail, CO"}).DisplayAddress(); got != "Vail, CO" {
		t.Errorf("unexpected address %q", got)
	}
}
