package recommend

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest token kept by the tokenizer.
const minTokenLength = 2

// tokenize lower-cases text and splits it into maximal runs of letters,
// digits and underscores. Runs shorter than minTokenLength are dropped,
// as are stop words when stopWords is non-nil.
func tokenize(text string, stopWords map[string]struct{}) []string {
	text = strings.ToLower(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < minTokenLength {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
