package citation

import (
	"net/url"
	"strings"
)

var markdownEscaper = strings.NewReplacer("(", "%28", ")", "%29", " ", "%20")

// normalize accepts absolute http(s) URLs only. Scheme and host are lower-cased,
// the fragment is dropped and a bare "/" path is removed.
func normalize(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimRight(raw, ".,;")
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	u.Host = strings.ToLower(u.Host)
	if u.Hostname() == "" {
		return nil, false
	}
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "/" && u.RawQuery == "" {
		u.Path = ""
	}
	return u, true
}

func render(u *url.URL) string {
	return markdownEscaper.Replace(u.String())
}

func domain(u *url.URL) string {
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// isSearchEngine reports generic search result pages, which are not sources.
func isSearchEngine(u *url.URL) bool {
	host := domain(u)
	path := strings.ToLower(u.Path)

	switch {
	case host == "bing.com" && strings.HasPrefix(path, "/search"):
		return true
	case host == "duckduckgo.com" || strings.HasSuffix(host, ".duckduckgo.com"):
		return true
	case host == "search.yahoo.com":
		return true
	case isGoogleHost(host) && (strings.HasPrefix(path, "/search") || strings.HasPrefix(path, "/url")):
		return true
	}
	return false
}

// isGoogleHost matches google.com, google.ca, google.co.uk and similar.
func isGoogleHost(host string) bool {
	rest, ok := strings.CutPrefix(host, "google.")
	if !ok || rest == "" {
		return false
	}
	for _, label := range strings.Split(rest, ".") {
		if label == "" || len(label) > 3 {
			return false
		}
	}
	return true
}

func searchLabel(u *url.URL) string {
	q := u.Query()
	for _, key := range []string{"q", "p", "query"} {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			return strings.NewReplacer("[", "", "]", "").Replace(v)
		}
	}
	return domain(u)
}
