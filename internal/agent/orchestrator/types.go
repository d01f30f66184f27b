package orchestrator

import (
	"time"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/model"
)

// State is a step of the per-turn pipeline.
type State string

const (
	StateStart          State = "start"
	StateClassifying    State = "classifying"
	StateToolInvocation State = "tool_invocation"
	StateAssembling     State = "assembling"
	StateGenerating     State = "generating"
	StatePostProcessing State = "post_processing"
	StateDone           State = "done"
	StateErrored        State = "errored"
)

// Config tunes the generator call.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// TurnTimeout bounds a whole turn including rate-limit waits.
	TurnTimeout time.Duration
	// ResortFilter narrows the resort lookup, e.g. to a state or country.
	ResortFilter string
}

// RespondInput is one user turn plus the session context the caller holds.
// Location is nil when the user has not shared one.
type RespondInput struct {
	Utterance string
	History   []model.Turn
	Location  *model.Location
}

// RespondOutput is the answer and a record of how it was produced.
// History is a new slice with the user turn and the reply appended.
type RespondOutput struct {
	Text              string         `json:"text"`
	Decision          agent.Decision `json:"decision"`
	SearchUsed        bool           `json:"search_used"`
	SearchUnavailable bool           `json:"search_unavailable"`
	LocationUsed      bool           `json:"location_used"`
	Links             []string       `json:"links"`
	History           []model.Turn   `json:"-"`
	Trace             []State        `json:"trace"`
}

// Failed reports whether the turn ended in the errored state.
func (o RespondOutput) Failed() bool {
	return len(o.Trace) > 0 && o.Trace[len(o.Trace)-1] == StateErrored
}
