package router

import (
	"regexp"
	"strings"
)

// Switch trigger phrases, tested in this order; the first match wins and its
// captured remainder becomes the requested persona name.
var switchPatterns = []*regexp.Regexp{
	regexp.MustCompile(`change personality to (.+)`),
	regexp.MustCompile(`switch to (.+)`),
	regexp.MustCompile(`become (.+)`),
	regexp.MustCompile(`act like (.+)`),
	regexp.MustCompile(`be (.+)`),
}

// ParseSwitch reports whether the message is a persona-switch request and
// returns the normalized requested name ("personality" stripped, trimmed).
func ParseSwitch(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range switchPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			name := strings.ReplaceAll(m[1], "personality", "")
			return strings.TrimSpace(name), true
		}
	}
	return "", false
}

// ResolvePersona matches a requested name against the known persona list with
// case-insensitive containment: "lynch" resolves to "Peter Lynch". ok is false
// when nothing matches; the caller reports an unrecognized-persona outcome and
// keeps the active persona unchanged.
func ResolvePersona(requested string, known []string) (string, bool) {
	if requested == "" {
		return "", false
	}
	lower := strings.ToLower(requested)
	for _, p := range known {
		if strings.Contains(strings.ToLower(p), lower) {
			return p, true
		}
	}
	return "", false
}
