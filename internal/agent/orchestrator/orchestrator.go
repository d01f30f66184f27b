package orchestrator

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/assembler"
	"snowboarding-assistant/internal/agent/citation"
	"snowboarding-assistant/internal/agent/prompt"
	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/pkg/llmprovider"
)

// turn carries the per-turn state through the pipeline.
type turn struct {
	in       RespondInput
	out      RespondOutput
	search   *agent.SearchResult
	location agent.LocationResult
	messages []llmprovider.Message
	reply    string
}

func (t *turn) enter(s State) {
	t.out.Trace = append(t.out.Trace, s)
}

// Respond runs classify, tools, assemble, generate and post-process for one turn.
func (o *implOrchestrator) Respond(ctx context.Context, in RespondInput) RespondOutput {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.TurnTimeout)
	defer cancel()

	in.Utterance = strings.TrimSpace(in.Utterance)
	t := &turn{in: in, out: RespondOutput{Links: []string{}}}
	t.enter(StateStart)

	if in.Utterance == "" {
		return o.fail(ctx, t, prompt.ApologyEmpty, nil)
	}

	t.enter(StateClassifying)
	t.out.Decision = o.classify(ctx, in)

	t.enter(StateToolInvocation)
	o.invokeTools(ctx, t)

	t.enter(StateAssembling)
	t.messages = o.assembler.Build(assembler.Input{
		Utterance:     in.Utterance,
		History:       in.History,
		Search:        t.search,
		Location:      t.location,
		NeedsLocation: t.out.Decision.NeedsLocation,
	})

	t.enter(StateGenerating)
	if o.limiter != nil {
		if err := o.limiter.Acquire(ctx); err != nil {
			return o.fail(ctx, t, apologyFor(err), err)
		}
	}
	reply, err := o.llm.Generate(ctx, llmprovider.GenerateRequest{
		Messages:    t.messages,
		Model:       o.cfg.Model,
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
	})
	if err != nil {
		return o.fail(ctx, t, apologyFor(err), err)
	}
	if strings.TrimSpace(reply) == "" {
		return o.fail(ctx, t, prompt.ApologyGeneric, llmprovider.ErrEmptyResponse)
	}
	t.reply = reply

	t.enter(StatePostProcessing)
	text := citation.Apply(t.reply, t.out.Links, t.out.SearchUsed)
	if t.out.SearchUnavailable {
		text = prompt.SearchUnavailableNotice + "\n\n" + text
	}
	t.out.Text = text
	t.out.History = model.AppendTurns(in.History,
		model.Turn{Role: model.RoleUser, Content: in.Utterance},
		model.Turn{Role: model.RoleAssistant, Content: text},
	)

	t.enter(StateDone)
	o.l.Infof(ctx, "%s: done search=%t location=%t links=%d", LogPrefixRespond,
		t.out.SearchUsed, t.out.LocationUsed, len(t.out.Links))
	return t.out
}

func (o *implOrchestrator) classify(ctx context.Context, in RespondInput) agent.Decision {
	if o.router == nil {
		return agent.NoTool(false)
	}
	res := o.router.Classify(ctx, in.Utterance, in.History)
	if res.Degraded {
		o.l.Warnf(ctx, "%s: classifier degraded after %d attempts: %s", LogPrefixRespond, res.Attempts, res.Reason)
	}
	return res.Decision
}

// invokeTools runs search and the resort lookup concurrently and waits for both.
// Location is attached whenever the user shared one, regardless of the decision.
func (o *implOrchestrator) invokeTools(ctx context.Context, t *turn) {
	t.location = agent.LocationResult{Unavailable: true}

	var (
		search   agent.SearchResult
		location agent.LocationResult
	)
	doSearch := t.out.Decision.NeedsSearch && o.search != nil
	doLocation := t.in.Location != nil && o.resorts != nil

	g, gctx := errgroup.WithContext(ctx)
	if doSearch {
		g.Go(func() error {
			search = o.search.Search(gctx, t.out.Decision.SearchQuery)
			return nil
		})
	}
	if doLocation {
		g.Go(func() error {
			location = o.resorts.Lookup(gctx, t.in.Location, o.cfg.ResortFilter)
			return nil
		})
	}
	_ = g.Wait()

	if doSearch {
		if search.Err != nil {
			o.l.Warnf(ctx, "%s: search for %q failed: %v", LogPrefixTools, t.out.Decision.SearchQuery, search.Err)
		}
		t.search = &search
		t.out.SearchUsed = true
		t.out.SearchUnavailable = search.Unavailable
		if len(search.Links) > 0 {
			t.out.Links = append([]string(nil), search.Links...)
		}
	}
	if doLocation {
		if location.Err != nil {
			o.l.Warnf(ctx, "%s: resort lookup failed: %v", LogPrefixTools, location.Err)
		}
		t.location = location
		t.out.LocationUsed = !location.Unavailable
	}
}

// fail ends the turn in the errored state with a user-facing apology. The
// user turn is still recorded so the conversation can continue.
func (o *implOrchestrator) fail(ctx context.Context, t *turn, apology string, err error) RespondOutput {
	if err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixRespond, err)
	}
	t.enter(StateErrored)
	t.out.Text = apology
	if t.in.Utterance == "" {
		t.out.History = model.AppendTurns(t.in.History)
		return t.out
	}
	t.out.History = model.AppendTurns(t.in.History,
		model.Turn{Role: model.RoleUser, Content: t.in.Utterance},
		model.Turn{Role: model.RoleAssistant, Content: apology},
	)
	return t.out
}

func apologyFor(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return prompt.ApologyCanceled
	}
	return prompt.ApologyGeneric
}
