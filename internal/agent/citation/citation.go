// Package citation rewrites the sources section of a generated answer from the
// links the search tool actually returned.
package citation

import (
	"fmt"
	"regexp"
	"strings"

	"snowboarding-assistant/internal/agent/prompt"
)

// MaxCitations caps the sources list.
const MaxCitations = 5

// sectionHeader matches a line opening a sources-like section, e.g.
// "Sources:", "**References:**", "## Sources", "Helpful search query: ...".
var sectionHeader = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?(?:\*\*|__|\*|_)?\s*(?:sources?|references?|helpful search query)\s*(?:\*\*|__|\*|_)?\s*(?::|$)`)

// Apply is pure and idempotent: Apply(Apply(t, l, true), l, true) == Apply(t, l, true).
// When searchUsed is false the text is returned unchanged.
func Apply(text string, links []string, searchUsed bool) string {
	if !searchUsed {
		return text
	}

	body := StripSources(text)
	cites, helpful := Select(links)
	if len(cites) == 0 && helpful == nil {
		return body
	}

	var sb strings.Builder
	sb.WriteString(body)
	if len(cites) > 0 {
		sb.WriteString(prompt.SourcesHeader)
		for _, c := range cites {
			fmt.Fprintf(&sb, prompt.SourceLine, c.Label, c.URL)
		}
	}
	if helpful != nil {
		if len(cites) == 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, prompt.HelpfulQueryFooter, helpful.Label, helpful.URL)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// StripSources drops everything from the first sources-like header line to the
// end of the text, plus trailing whitespace.
func StripSources(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if sectionHeader.MatchString(line) {
			lines = lines[:i]
			break
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n")
}

// Link is a rendered citation.
type Link struct {
	Label string
	URL   string
}

// Select normalizes and dedupes links, drops anything that is not http(s), and
// splits search-engine pages from real sources. At most MaxCitations sources are
// returned; helpful is the first search-engine link, if any.
func Select(links []string) (cites []Link, helpful *Link) {
	seen := make(map[string]struct{}, len(links))
	for _, raw := range links {
		u, ok := normalize(raw)
		if !ok {
			continue
		}
		key := u.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if isSearchEngine(u) {
			if helpful == nil {
				helpful = &Link{Label: searchLabel(u), URL: render(u)}
			}
			continue
		}
		if len(cites) < MaxCitations {
			cites = append(cites, Link{Label: domain(u), URL: render(u)})
		}
	}
	return cites, helpful
}
