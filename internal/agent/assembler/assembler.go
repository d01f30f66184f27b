// Package assembler turns a turn's inputs into the ordered message list sent to
// the response generator.
package assembler

import (
	"fmt"
	"strings"
	"time"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/prompt"
	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/pkg/llmprovider"
)

const DefaultHistoryTurns = 8

type Config struct {
	BasePrompt   string
	HistoryTurns int
	Timezone     string
	Now          func() time.Time
}

// Input is everything known about the current turn.
// Search is nil when no search was performed.
type Input struct {
	Utterance     string
	History       []model.Turn
	Search        *agent.SearchResult
	Location      agent.LocationResult
	NeedsLocation bool
}

type Assembler struct {
	base         string
	historyTurns int
	loc          *time.Location
	now          func() time.Time
}

func New(cfg Config) *Assembler {
	if cfg.BasePrompt == "" {
		cfg.BasePrompt = prompt.BaseSystem
	}
	if cfg.HistoryTurns <= 0 {
		cfg.HistoryTurns = DefaultHistoryTurns
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Assembler{
		base:         cfg.BasePrompt,
		historyTurns: cfg.HistoryTurns,
		loc:          loadLocation(cfg.Timezone),
		now:          cfg.Now,
	}
}

// Build returns [system, history window..., search context?, user]. The last
// message is always the current utterance.
func (a *Assembler) Build(in Input) []llmprovider.Message {
	window := Window(in.History, in.Utterance, a.historyTurns)

	msgs := make([]llmprovider.Message, 0, len(window)+3)
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleSystem, Content: a.systemPrompt(in)})
	for _, t := range window {
		msgs = append(msgs, llmprovider.Message{Role: string(t.Role), Content: t.Content})
	}
	if in.Search != nil {
		msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleSystem, Content: searchContext(*in.Search)})
	}
	return append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Content: in.Utterance})
}

func (a *Assembler) systemPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString(a.base)
	sb.WriteString(buildTimeContext(a.now().In(a.loc)))

	if in.Location.Unavailable {
		sb.WriteString(prompt.NoLocationNotice)
		if in.NeedsLocation {
			sb.WriteString(prompt.ShareLocationNudge)
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, prompt.LocationHeader, in.Location.Address)
	if len(in.Location.Resorts) == 0 {
		sb.WriteString(prompt.LocationNoResorts)
		return sb.String()
	}
	sb.WriteString(prompt.LocationResortsHead)
	for i, d := range in.Location.Resorts {
		fmt.Fprintf(&sb, prompt.LocationResortLine, i+1, d.Resort.Name, place(d.Resort.State, d.Resort.Country), d.Miles)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func searchContext(res agent.SearchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, prompt.SearchContextHeader, res.Content)
	if len(res.Links) > 0 {
		sb.WriteString(prompt.SearchLinksHeader)
		for i, link := range res.Links {
			fmt.Fprintf(&sb, "[%d] %s\n", i+1, link)
		}
	}
	sb.WriteString(prompt.SearchInstruction)
	return sb.String()
}

// Window keeps the last n user and assistant turns of history. System turns
// and blank turns are dropped, as is a trailing user turn equal to utterance.
func Window(history []model.Turn, utterance string, n int) []model.Turn {
	kept := make([]model.Turn, 0, len(history))
	for _, t := range history {
		if t.Role != model.RoleUser && t.Role != model.RoleAssistant {
			continue
		}
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		kept = append(kept, t)
	}
	if k := len(kept); k > 0 && kept[k-1].Role == model.RoleUser && strings.TrimSpace(kept[k-1].Content) == strings.TrimSpace(utterance) {
		kept = kept[:k-1]
	}
	if n >= 0 && len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return kept
}

func place(state, country string) string {
	switch {
	case state != "" && country != "":
		return state + ", " + country
	case state != "":
		return state
	default:
		return country
	}
}
