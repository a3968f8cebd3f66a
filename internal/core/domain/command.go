package domain

import (
	"strings"
	"unicode"
)

// Tokenize splits raw message text into whitespace-delimited tokens. No quoting or escaping is recognized.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// ParseCommand returns the first token of the text, lower-cased.
func ParseCommand(text string) string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return ""
	}

	return strings.ToLower(tokens[0])
}

// ParseCommandArgs returns everything after the first token with surrounding whitespace removed.
func ParseCommandArgs(text string) string {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return ""
	}

	return strings.TrimSpace(text[i:])
}
