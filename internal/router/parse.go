package router

import (
	"strings"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/prompt"
)

// ParseDecision reads a classifier reply. The grammar is
//
//	NONE
//	SEARCH[: <query>]
//
// matched case-insensitively on the first non-empty line. ok is false when the
// reply matched neither form; the decision is then NoTool.
func ParseDecision(reply, utterance string, needsLocation bool) (agent.Decision, bool) {
	line := firstLine(reply)
	upper := strings.ToUpper(line)

	switch {
	case upper == MarkerNone || strings.HasPrefix(upper, MarkerNone+" ") || strings.HasPrefix(upper, MarkerNone+"."):
		return agent.NoTool(needsLocation), true

	case strings.HasPrefix(upper, MarkerSearch):
		rest := strings.TrimSpace(line[len(MarkerSearch):])
		if rest == "" {
			return agent.Search("", utterance, needsLocation), true
		}
		if rest[0] != ':' {
			return agent.NoTool(needsLocation), false
		}
		query := strings.Trim(strings.TrimSpace(rest[1:]), "\"'`")
		return agent.Search(query, utterance, needsLocation), true
	}

	return agent.NoTool(needsLocation), false
}

// MentionsLocation reports whether the utterance asks about places relative to the user.
func MentionsLocation(utterance string) bool {
	u := strings.ToLower(utterance)
	for _, kw := range prompt.LocationKeywords {
		if strings.Contains(u, kw) {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "`")
	for _, line := range strings.Split(s, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return ""
}
