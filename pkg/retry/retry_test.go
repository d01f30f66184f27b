package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

func recordSleeps(dst *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*dst = append(*dst, d)
		return nil
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"rate limited", statusErr(429), ClassRateLimited},
		{"server", statusErr(503), ClassServerError},
		{"wrapped server", fmt.Errorf("call: %w", statusErr(500)), ClassServerError},
		{"bad request", statusErr(400), ClassFatal},
		{"unauthorized", statusErr(401), ClassFatal},
		{"request timeout", statusErr(408), ClassTransient},
		{"plain", errors.New("connection reset"), ClassTransient},
		{"permanent", Permanent(errors.New("bad input")), ClassFatal},
		{"canceled", context.Canceled, ClassFatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDelay_DoublesFromBase(t *testing.T) {
	p := Policy{BaseDelay: 2 * time.Second, MaxDelay: time.Minute, Factor: 2}
	if d := p.Delay(1, ClassTransient); d != 2*time.Second {
		t.Errorf("first retry delay = %v, want 2s", d)
	}
	if d := p.Delay(2, ClassTransient); d != 4*time.Second {
		t.Errorf("second retry delay = %v, want 4s", d)
	}
}

func TestDelay_ExtendedForRateLimit(t *testing.T) {
	p := Policy{BaseDelay: time.Second, MaxDelay: time.Minute, Factor: 2, ExtendedMultiplier: 3}
	base := p.Delay(1, ClassTransient)
	ext := p.Delay(1, ClassRateLimited)
	srv := p.Delay(1, ClassServerError)
	if ext != 3*base || srv != 3*base {
		t.Errorf("extended delays = %v/%v, want %v", ext, srv, 3*base)
	}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	p := Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second, Factor: 2, Sleep: recordSleeps(&sleeps)}

	got, err := Do(context.Background(), p, func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("Do() = %q, %v", got, err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(sleeps) != 2 || sleeps[0] != 2*time.Second || sleeps[1] != 4*time.Second {
		t.Errorf("sleeps = %v, want [2s 4s]", sleeps)
	}
}

func TestDo_FatalStopsImmediately(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	p := Policy{MaxAttempts: 5, BaseDelay: time.Second, Sleep: recordSleeps(&sleeps)}

	_, err := Do(context.Background(), p, func(context.Context) (int, error) {
		calls++
		return 0, statusErr(401)
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	var sc StatusCoder
	if !errors.As(err, &sc) || sc.StatusCode() != 401 {
		t.Errorf("expected original error, got %v", err)
	}
	if len(sleeps) != 0 {
		t.Errorf("no sleep expected, got %v", sleeps)
	}
}

func TestDo_ExhaustedReturnsLastError(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	p := Policy{MaxAttempts: 3, BaseDelay: time.Second, Sleep: recordSleeps(&sleeps)}

	_, err := Do(context.Background(), p, func(context.Context) (int, error) {
		calls++
		return 0, fmt.Errorf("attempt %d", calls)
	})
	if err == nil || err.Error() != "attempt 3" {
		t.Errorf("err = %v, want attempt 3", err)
	}
	if len(sleeps) != 2 {
		t.Errorf("sleeps = %d, want 2", len(sleeps))
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := Do(ctx, Default(), func(context.Context) (int, error) {
		calls++
		return 1, nil
	})
	if calls != 0 {
		t.Errorf("fn should not run on a cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
