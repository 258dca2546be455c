package request

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// CleanText strips markup and control characters from a free-text field and
// collapses runs of whitespace.
func CleanText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// CleanValue walks an arbitrary decoded JSON value and sanitizes every
// string leaf in place. The schedule payload is stored verbatim for later
// display, so whatever shape the form sends must come out safe.
func CleanValue(v any) any {
	switch t := v.(type) {
	case string:
		return CleanText(t)
	case map[string]any:
		for k, vv := range t {
			t[k] = CleanValue(vv)
		}
		return t
	case []any:
		for i, vv := range t {
			t[i] = CleanValue(vv)
		}
		return t
	default:
		return v
	}
}
