package query

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upper applies full Unicode upper-casing, so "ß" becomes "SS".
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// equalFold reports whether a and b are equal after upper-casing both.
func equalFold(a, b string) bool {
	return upper(a) == upper(b)
}
