// Package handle derives login handles from account owner names.
package handle

import (
	"strings"
	"unicode/utf8"
)

// Derive returns the login handle for an owner name: the lowercased
// first character of each whitespace-separated word, concatenated.
// "Steven Thomas Williams" -> "stw". Deterministic, so re-deriving
// always yields the same handle.
func Derive(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
