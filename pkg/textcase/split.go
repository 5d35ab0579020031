package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitPascalCase inserts a space before every uppercase letter that starts a
// new word: one touching a lowercase letter on either side, or the final
// letter of the input. Runs of capitals stay together as a single word, so
// "HasABCDAcronym" becomes "Has ABCD Acronym".
//
// The final-letter rule is applied even inside a trailing acronym, which
// means "EndsWithAB" yields "Ends With A B". Characters are never changed,
// only separated.
func SplitPascalCase(input string) string {
	type span struct {
		r          rune
		start, end int
	}

	spans := make([]span, 0, len(input))
	for offset := 0; offset < len(input); {
		r, size := utf8.DecodeRuneInString(input[offset:])
		spans = append(spans, span{r: r, start: offset, end: offset + size})
		offset += size
	}
	if len(spans) < 2 {
		return input
	}

	last := len(spans) - 1
	var builder strings.Builder
	builder.Grow(len(input) + len(spans)/2)

	for i, s := range spans {
		if i > 0 && unicode.IsUpper(s.r) && spans[i-1].r != ' ' {
			if unicode.IsLower(spans[i-1].r) || i == last || unicode.IsLower(spans[i+1].r) {
				builder.WriteByte(' ')
			}
		}
		// Original bytes keep invalid UTF-8 intact.
		builder.WriteString(input[s.start:s.end])
	}
	return builder.String()
}

// Words returns the words SplitPascalCase would join with spaces.
func Words(input string) []string {
	return strings.Fields(SplitPascalCase(input))
}
