package formatter

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first character of s and keeps the rest as is.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	// cases.Caser keeps state, so one is built per call
	upper := cases.Upper(language.Und)
	return upper.String(s[:size]) + s[size:]
}

// CapitalizeAll capitalizes every space separated word and trims the result.
func CapitalizeAll(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = Capitalize(word)
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
