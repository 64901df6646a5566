package seolint

import (
	"strings"
	"unicode"
)

// stopWords are dropped from titles before a keyword is inferred.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a an the
		and or but nor so yet for of in on at to by with from into onto about over under
		as than vs versus via per
		is are was were be been being am do does did has have had can could will would
		shall should may might must
		i me my we our you your he him his she her it its they them their this that these those
		what which who whom whose why how when where
		all any both each every few more most much many other some such no not only own same
		very just too also
		guide guides best ultimate complete essential essentials top tips tricks ways things
		everything need know definitive comprehensive simple easy quick
	`) {
		stopWords[w] = struct{}{}
	}
}

// MaxKeywordWords is the maximum number of words in an inferred keyword.
const MaxKeywordWords = 3

// InferKeyword derives a representative keyword phrase from a title.
// It keeps the first up to three significant words, dropping stop-words and
// words of two characters or fewer. Punctuation at either end of a word is
// trimmed first. When nothing survives it falls back to the first word of
// the lowercased title. The result only depends on the
// title, so the same title always yields the same keyword.
func InferKeyword(title string) string {
	lower := strings.ToLower(title)

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		switch r {
		case '-', ':', ',':
			return true
		}
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
	})

	words := make([]string, 0, MaxKeywordWords)
	for _, tok := range tokens {
		tok = strings.TrimFunc(tok, unicode.IsPunct)
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if len([]rune(tok)) <= 2 {
			continue
		}
		words = append(words, tok)
		if len(words) == MaxKeywordWords {
			break
		}
	}

	if len(words) > 0 {
		return strings.Join(words, " ")
	}

	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
