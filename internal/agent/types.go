package agent

import (
	"strings"

	"snowboarding-assistant/internal/resort"
)

// Decision is the classifier's verdict for one utterance. SearchQuery is
// non-empty only when NeedsSearch is set.
type Decision struct {
	NeedsSearch   bool   `json:"needs_search"`
	NeedsLocation bool   `json:"needs_location"`
	SearchQuery   string `json:"search_query,omitempty"`
}

// NoTool is the decision when no search is needed.
func NoTool(needsLocation bool) Decision {
	return Decision{NeedsLocation: needsLocation}
}

// Search is the decision to search for query, falling back to utterance when query is blank.
func Search(query, utterance string, needsLocation bool) Decision {
	q := strings.TrimSpace(query)
	if q == "" {
		q = strings.TrimSpace(utterance)
	}
	if q == "" {
		return NoTool(needsLocation)
	}
	return Decision{NeedsSearch: true, NeedsLocation: needsLocation, SearchQuery: q}
}

// SearchResult is what the web search tool hands back for one turn.
type SearchResult struct {
	Content string
	// Links are deduplicated, in the order the provider returned them.
	Links []string
	// Unavailable is set when the quota was exhausted and the provider was not called.
	Unavailable bool
	// Err records a provider failure that was turned into an empty result.
	Err error
}

// LocationResult is what the resort distance tool hands back for one turn.
type LocationResult struct {
	Address string
	Resorts []resort.Distance
	// Unavailable is set when the user has not shared a location.
	Unavailable bool
	Err         error
}
