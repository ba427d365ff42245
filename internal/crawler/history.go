package crawler

import (
	"net/url"
)

// history records the URLs a walk has already visited.
type history struct {
	visited map[string]bool
	order   []string
}

func newHistory() *history {
	return &history{visited: make(map[string]bool)}
}

// Visit records rawURL and reports whether it was new.
func (h *history) Visit(rawURL string) bool {
	key := normalizeURL(rawURL)
	if h.visited[key] {
		return false
	}
	h.visited[key] = true
	h.order = append(h.order, rawURL)
	return true
}

// Len returns the number of distinct URLs visited.
func (h *history) Len() int {
	return len(h.order)
}

// normalizeURL normalizes a URL for comparison.
// Unparseable URLs compare by their raw text.
func normalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""

	// Remove trailing slash from path (unless it's just "/")
	if len(parsed.Path) > 1 && parsed.Path[len(parsed.Path)-1] == '/' {
		parsed.Path = parsed.Path[:len(parsed.Path)-1]
	}

	return parsed.String()
}
