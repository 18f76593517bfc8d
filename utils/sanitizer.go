package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy strips all markup from generated bodies before they are shown
// as list previews.
var StrictPolicy = bluemonday.StrictPolicy()

// StripHTML removes all HTML tags from content
func StripHTML(body string) string {
	return StrictPolicy.Sanitize(body)
}

// Preview collapses a message body into a single-line excerpt of at most max
// runes for the mail list row. Truncation never splits a multi-byte rune.
func Preview(body string, max int) string {
	flat := strings.Join(strings.Fields(StripHTML(body)), " ")
	if len(flat) <= max {
		return flat
	}
	runes := []rune(flat)
	if len(runes) <= max {
		return flat
	}
	return string(runes[:max])
}

// Initials derives the one- or two-letter avatar monogram from a display
// name.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "?"
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte(p[0])
		if b.Len() == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

// IsReplySubject reports whether a subject carries a reply or forward prefix.
// Thread collation only lets such subjects overwrite the originating subject.
func IsReplySubject(subject string) bool {
	s := strings.TrimSpace(subject)
	for _, prefix := range []string{"Re:", "RE:", "Fwd:", "FWD:", "Fw:"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
