package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Free-text fields (names, addresses, descriptions) never carry markup.
var strict = bluemonday.StrictPolicy()

// Text strips all HTML from s and trims surrounding whitespace. Entities are
// unescaped again so "Tom & Jerry" survives unchanged.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Strings applies Text to every element and drops the ones left empty.
func Strings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if clean := Text(s); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// Map applies Text to every value of m.
func Map(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[Text(k)] = Text(v)
	}
	return out
}

// Ptr applies Text through a pointer, keeping nil as nil.
func Ptr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	return &clean
}
