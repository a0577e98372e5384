package sentiment

import (
	"strings"
	"unicode"
)

// negators flip the valence of the token that follows them
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"non":     true,
	"cant":    true,
	"can't":   true,
	"dont":    true,
	"don't":   true,
	"doesnt":  true,
	"doesn't": true,
	"isnt":    true,
	"isn't":   true,
	"wont":    true,
	"won't":   true,
	"wasnt":   true,
	"wasn't":  true,
}

const variationSelector = '\uFE0F'

// Tokenize lowercases text and splits it into word and emoji tokens.
// Punctuation other than apostrophes and hyphens is dropped.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text) + 8)

	for _, r := range strings.ToLower(text) {
		switch {
		case r == variationSelector:
			// part of the preceding emoji
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case isEmoji(r):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isEmoji(r rune) bool {
	return unicode.Is(unicode.So, r) || (r >= 0x1F300 && r <= 0x1FAFF)
}

// isNegator reports whether token negates the next one
func isNegator(token string) bool {
	return negators[token]
}
