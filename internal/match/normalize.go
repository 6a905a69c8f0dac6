package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to a comparable form: word boundaries
// and separators are dropped and everything is lowercased, so "errorType",
// "error_type" and "ERROR-TYPE" all become "errortype".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeIdentSingular is NormalizeIdent with one plural suffix removed,
// so "collections" matches "collection" and "entries" matches "entry".
// Short words are left alone.
func NormalizeIdentSingular(s string) string {
	n := NormalizeIdent(s)

	switch {
	case len(n) > 4 && strings.HasSuffix(n, "ies"):
		return n[:len(n)-3] + "y"
	case len(n) > 2 && strings.HasSuffix(n, "s"):
		return n[:len(n)-1]
	default:
		return n
	}
}

// TokenizeIdent splits an identifier into lowercase words.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i := range tokens {
		tokens[i] = strings.ToLower(tokens[i])
	}

	return tokens
}

// tokenizeCamelCase splits s at separators and case boundaries, keeping the
// original case: "getHTTPResponse" gives get, HTTP, Response.
func tokenizeCamelCase(s string) []string {
	var tokens []string

	for _, word := range strings.FieldsFunc(s, isSeparator) {
		runes := []rune(word)
		start := 0

		for i := 1; i < len(runes); i++ {
			if caseBoundary(runes, i) {
				tokens = append(tokens, string(runes[start:i]))
				start = i
			}
		}

		tokens = append(tokens, string(runes[start:]))
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// caseBoundary reports whether a new word starts at runes[i]: either a
// lower-to-upper step ("errorType") or the last capital of an acronym that
// is followed by a lowercase letter ("XMLParser").
func caseBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
