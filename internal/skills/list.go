package skills

import (
	"regexp"
	"strings"
)

// compoundAndLimit is the token length under which "X and Y" is read as two
// separate skills. Longer coordinations are kept as one compound phrase.
const compoundAndLimit = 50

var bulletMarker = regexp.MustCompile(`(?m)^[-•*]\s*`)

// ParseList tokenizes a skill block (bulleted list, comma-separated line, or
// plain text) into raw skill tokens. Tokens are not normalized; callers feed
// the result through NormalizeAll.
func ParseList(text string) []string {
	var tokens []string

	text = bulletMarker.ReplaceAllString(text, "")

	var parts []string
	switch {
	case strings.Contains(text, ","):
		parts = strings.Split(text, ",")
	case strings.Contains(text, "\n"):
		parts = strings.Split(text, "\n")
	default:
		parts = []string{text}
	}

	for _, part := range parts {
		token := strings.TrimSpace(part)
		token = multiSpace.ReplaceAllString(token, " ")

		lower := strings.ToLower(token)
		switch {
		case strings.Contains(lower, " or "):
			tokens = append(tokens, splitCompound(token, " or ")...)
		case strings.Contains(lower, " and ") && len(token) < compoundAndLimit:
			tokens = append(tokens, splitCompound(token, " and ")...)
		case token != "":
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// splitCompound splits a coordination like "Docker or Podman" into its
// branches, dropping empty fragments.
func splitCompound(token, sep string) []string {
	var out []string
	for _, sub := range strings.Split(token, sep) {
		sub = strings.TrimSpace(sub)
		if sub != "" {
			out = append(out, sub)
		}
	}
	return out
}
