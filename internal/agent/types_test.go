package agent

import "testing"

func TestSearchDecision(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		utterance string
		want      Decision
	}{
		{"explicit query", "vail snow report", "is it snowing at vail", Decision{NeedsSearch: true, SearchQuery: "vail snow report"}},
		{"blank query uses utterance", "  ", "is it snowing at vail", Decision{NeedsSearch: true, SearchQuery: "is it snowing at vail"}},
		{"nothing to search", "", " ", Decision{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Search(tt.query, tt.utterance, false); got != tt.want {
				t.Errorf("Search() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNoToolHasNoQuery(t *testing.T) {
	d := NoTool(true)
	if d.NeedsSearch || d.SearchQuery != "" || !d.NeedsLocation {
		t.Errorf("unexpected decision %+v", d)
	}
}
