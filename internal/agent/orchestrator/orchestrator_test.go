package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"snowboarding-assistant/internal/agent/assembler"
	"snowboarding-assistant/internal/agent/prompt"
	"snowboarding-assistant/internal/agent/tools"
	"snowboarding-assistant/internal/model"
	resortUC "snowboarding-assistant/internal/resort/usecase"
	"snowboarding-assistant/internal/router"
	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/internal/usage/repository/memory"
	usageUC "snowboarding-assistant/internal/usage/usecase"
	"snowboarding-assistant/pkg/llmprovider"
	"snowboarding-assistant/pkg/retry"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// scriptedLLM answers classifier calls with classifyReply and everything else with answer.
type scriptedLLM struct {
	mu            sync.Mutex
	classifyReply string
	answer        string
	answerErr     error
	answerReqs    []llmprovider.GenerateRequest
}

func (m *scriptedLLM) Generate(ctx context.Context, req llmprovider.GenerateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(req.Messages) > 0 && req.Messages[0].Content == prompt.Classifier {
		return m.classifyReply, nil
	}
	m.answerReqs = append(m.answerReqs, req)
	return m.answer, m.answerErr
}

func (m *scriptedLLM) lastAnswerReq(t *testing.T) llmprovider.GenerateRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.answerReqs) == 0 {
		t.Fatal("generator was never called for an answer")
	}
	return m.answerReqs[len(m.answerReqs)-1]
}

type mockSearcher struct {
	mu    sync.Mutex
	hits  []tools.Hit
	calls int
}

func (m *mockSearcher) Name() string { return "mock" }

func (m *mockSearcher) Search(ctx context.Context, query string, maxResults int) ([]tools.Hit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.hits, nil
}

type fakeClock struct {
	mu    sync.Mutex
	t     time.Time
	slept time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
	c.slept += d
	return nil
}

type fixture struct {
	llm      *scriptedLLM
	searcher *mockSearcher
	governor usage.Governor
	clock    *fakeClock
	orch     *implOrchestrator
}

func newFixture(t *testing.T, llm *scriptedLLM, searcher *mockSearcher, limits usageUC.Config) *fixture {
	t.Helper()
	l := &mockLogger{}
	clock := &fakeClock{t: time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)}
	gov := usageUC.New(memory.New(), nil, limits, l, usageUC.WithClock(clock.Now), usageUC.WithSleep(clock.Sleep))

	search := tools.NewWebSearch(searcher, gov, tools.SearchConfig{
		Retry: retry.Policy{MaxAttempts: 1},
	}, l)
	resorts := tools.NewResortDistances(resortUC.New(nil, l), 0, l)

	orch := New(Deps{
		Router:    router.New(llm, gov, router.Config{}, l),
		Search:    search,
		Resorts:   resorts,
		Assembler: assembler.New(assembler.Config{Now: clock.Now}),
		LLM:       llm,
		Limiter:   gov,
	}, Config{}, l)

	return &fixture{llm: llm, searcher: searcher, governor: gov, clock: clock, orch: orch}
}

func defaultLimits() usageUC.Config {
	return usageUC.Config{
		Search:  usage.Limit{Threshold: 600, Window: 720 * time.Hour},
		Request: usage.Limit{Threshold: 20, Window: time.Minute},
	}
}

func wantTrace(t *testing.T, got []State, want ...State) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trace = %v, want %v", got, want)
		}
	}
}

func TestRespond_WeatherSearchWithoutLinks(t *testing.T) {
	llm := &scriptedLLM{
		classifyReply: "SEARCH: Vail weather forecast tomorrow",
		answer:        "Expect light snow at Vail tomorrow.\n\nSources:\n- https://made-up.example",
	}
	f := newFixture(t, llm, &mockSearcher{}, defaultLimits())

	out := f.orch.Respond(context.Background(), RespondInput{Utterance: "What's the weather at Vail tomorrow?"})

	if !out.Decision.NeedsSearch || out.Decision.SearchQuery != "Vail weather forecast tomorrow" {
		t.Fatalf("decision = %+v", out.Decision)
	}
	if !out.SearchUsed || out.SearchUnavailable {
		t.Errorf("search flags = used %t unavailable %t", out.SearchUsed, out.SearchUnavailable)
	}
	if f.searcher.calls != 1 {
		t.Errorf("searcher calls = %d, want 1", f.searcher.calls)
	}
	if strings.Contains(out.Text, "Sources") {
		t.Errorf("expected no sources section, got %q", out.Text)
	}
	if out.Text != "Expect light snow at Vail tomorrow." {
		t.Errorf("text = %q", out.Text)
	}
	if out.LocationUsed {
		t.Error("location should not be used without a shared location")
	}
	wantTrace(t, out.Trace, StateStart, StateClassifying, StateToolInvocation, StateAssembling, StateGenerating, StatePostProcessing, StateDone)
}

func TestRespond_SearchLinksBecomeSources(t *testing.T) {
	llm := &scriptedLLM{classifyReply: "SEARCH: vail snow report", answer: "Vail got 6 inches overnight."}
	searcher := &mockSearcher{hits: []tools.Hit{
		{Title: "Snow report", URL: "https://www.vail.com/snow-report", Content: "6 inches"},
		{Title: "Forecast", URL: "https://opensnow.com/location/vail", Content: "more snow"},
	}}
	f := newFixture(t, llm, searcher, defaultLimits())

	out := f.orch.Respond(context.Background(), RespondInput{Utterance: "How much did Vail get last night?"})

	want := "Vail got 6 inches overnight.\n\n**Sources:**\n" +
		"- [vail.com](https://www.vail.com/snow-report)\n" +
		"- [opensnow.com](https://opensnow.com/location/vail)"
	if out.Text != want {
		t.Errorf("text =\n%s\nwant\n%s", out.Text, want)
	}
	if len(out.Links) != 2 {
		t.Errorf("links = %v", out.Links)
	}

	req := llm.lastAnswerReq(t)
	var sawSearch bool
	for _, m := range req.Messages {
		if m.Role == llmprovider.RoleSystem && strings.Contains(m.Content, "https://opensnow.com/location/vail") {
			sawSearch = true
		}
	}
	if !sawSearch {
		t.Error("search context was not passed to the generator")
	}
	if last := req.Messages[len(req.Messages)-1]; last.Role != llmprovider.RoleUser || last.Content != "How much did Vail get last night?" {
		t.Errorf("last message = %+v", last)
	}
}

func TestRespond_ClosestResortUsesLocation(t *testing.T) {
	llm := &scriptedLLM{classifyReply: "NONE", answer: "Vail is right next to you."}
	f := newFixture(t, llm, &mockSearcher{}, defaultLimits())

	out := f.orch.Respond(context.Background(), RespondInput{
		Utterance: "What's the closest resort to me?",
		Location:  &model.Location{Lat: 39.64, Lon: -106.38},
	})

	if !out.Decision.NeedsLocation || out.Decision.NeedsSearch {
		t.Fatalf("decision = %+v", out.Decision)
	}
	if !out.LocationUsed {
		t.Fatal("expected location to be used")
	}
	if f.searcher.calls != 0 {
		t.Errorf("searcher called %d times for a NONE decision", f.searcher.calls)
	}
	system := llm.lastAnswerReq(t).Messages[0].Content
	if !strings.Contains(system, "1. Vail (CO, USA) - 0.") {
		t.Errorf("system prompt does not rank Vail first at under a mile:\n%s", system)
	}
}

func TestRespond_SearchQuotaExhausted(t *testing.T) {
	limits := defaultLimits()
	limits.Search = usage.Limit{Threshold: 2, Window: 720 * time.Hour}
	llm := &scriptedLLM{classifyReply: "SEARCH: Park City lift ticket price", answer: "Day tickets usually run well over $200."}
	searcher := &mockSearcher{hits: []tools.Hit{{Title: "x", URL: "https://x.example"}}}
	f := newFixture(t, llm, searcher, limits)

	ctx := context.Background()
	f.governor.RecordSearch(ctx)
	f.governor.RecordSearch(ctx)

	out := f.orch.Respond(ctx, RespondInput{Utterance: "How much is a lift ticket at Park City?"})

	if searcher.calls != 0 {
		t.Errorf("provider called %d times with the quota spent", searcher.calls)
	}
	if !out.SearchUsed || !out.SearchUnavailable {
		t.Errorf("search flags = used %t unavailable %t", out.SearchUsed, out.SearchUnavailable)
	}
	if !strings.HasPrefix(out.Text, prompt.SearchUnavailableNotice) {
		t.Errorf("missing unavailable notice: %q", out.Text)
	}
	if !strings.Contains(out.Text, "Day tickets usually run well over $200.") {
		t.Errorf("missing model answer: %q", out.Text)
	}
	if strings.Contains(out.Text, "Sources") {
		t.Errorf("unexpected sources section: %q", out.Text)
	}

	var sawPlaceholder bool
	for _, m := range llm.lastAnswerReq(t).Messages {
		if strings.Contains(m.Content, prompt.SearchUnavailable) {
			sawPlaceholder = true
		}
	}
	if !sawPlaceholder {
		t.Error("generator did not receive the search unavailable content")
	}
}

func TestRespond_RateLimitStallsUntilWindowRolls(t *testing.T) {
	limits := defaultLimits()
	limits.Request = usage.Limit{Threshold: 2, Window: time.Minute}
	llm := &scriptedLLM{classifyReply: "NONE", answer: "Wax every few days on the hill."}
	f := newFixture(t, llm, &mockSearcher{}, limits)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if !f.governor.TryAcquire(ctx) {
			t.Fatalf("setup acquire %d failed", i)
		}
	}

	out := f.orch.Respond(ctx, RespondInput{Utterance: "How often should I wax my board?"})

	if out.Failed() {
		t.Fatalf("turn failed: %q", out.Text)
	}
	if out.Text != "Wax every few days on the hill." {
		t.Errorf("text = %q", out.Text)
	}
	if f.clock.slept < 59*time.Second {
		t.Errorf("expected the turn to wait for the window to roll over, slept %s", f.clock.slept)
	}
	if len(out.History) != 2 || out.History[0].Content != "How often should I wax my board?" {
		t.Errorf("user turn not kept in history: %+v", out.History)
	}
}

func TestRespond_RateLimitCanceled(t *testing.T) {
	limits := defaultLimits()
	limits.Request = usage.Limit{Threshold: 1, Window: time.Minute}
	llm := &scriptedLLM{classifyReply: "NONE", answer: "unused"}
	f := newFixture(t, llm, &mockSearcher{}, limits)

	ctx, cancel := context.WithCancel(context.Background())
	f.governor.TryAcquire(ctx)
	cancel()

	out := f.orch.Respond(ctx, RespondInput{Utterance: "Any tips for icy days?"})

	if !out.Failed() {
		t.Fatalf("expected errored turn, trace %v", out.Trace)
	}
	if out.Text != prompt.ApologyCanceled {
		t.Errorf("text = %q", out.Text)
	}
	if len(llm.answerReqs) != 0 {
		t.Error("generator should not be called after a cancelled wait")
	}
}

func TestRespond_GeneratorFailureApologizes(t *testing.T) {
	llm := &scriptedLLM{classifyReply: "NONE", answerErr: errors.New("boom")}
	f := newFixture(t, llm, &mockSearcher{}, defaultLimits())

	history := []model.Turn{{Role: model.RoleUser, Content: "hi"}, {Role: model.RoleAssistant, Content: "hello"}}
	out := f.orch.Respond(context.Background(), RespondInput{Utterance: "Best beginner board?", History: history})

	if out.Text != prompt.ApologyGeneric {
		t.Errorf("text = %q", out.Text)
	}
	wantTrace(t, out.Trace, StateStart, StateClassifying, StateToolInvocation, StateAssembling, StateGenerating, StateErrored)
	if len(out.History) != 4 || out.History[3].Content != prompt.ApologyGeneric {
		t.Errorf("history = %+v", out.History)
	}
	if len(history) != 2 {
		t.Error("input history was mutated")
	}
}

func TestRespond_EmptyUtterance(t *testing.T) {
	llm := &scriptedLLM{}
	f := newFixture(t, llm, &mockSearcher{}, defaultLimits())

	out := f.orch.Respond(context.Background(), RespondInput{Utterance: "   "})

	if out.Text != prompt.ApologyEmpty {
		t.Errorf("text = %q", out.Text)
	}
	wantTrace(t, out.Trace, StateStart, StateErrored)
	if len(out.History) != 0 {
		t.Errorf("history = %+v", out.History)
	}
}

func TestRespond_AppendsHistory(t *testing.T) {
	llm := &scriptedLLM{classifyReply: "NONE", answer: "Try a softer flex."}
	f := newFixture(t, llm, &mockSearcher{}, defaultLimits())

	out := f.orch.Respond(context.Background(), RespondInput{Utterance: "Which flex for park?"})

	if len(out.History) != 2 {
		t.Fatalf("history = %+v", out.History)
	}
	if out.History[0].Role != model.RoleUser || out.History[1].Role != model.RoleAssistant {
		t.Errorf("roles = %s, %s", out.History[0].Role, out.History[1].Role)
	}
	if out.Links == nil {
		t.Error("links should be an empty slice, not nil")
	}
}
