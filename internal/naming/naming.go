// Package naming turns schema identifiers into identifiers of the generated code
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Case is an identifier casing convention
type Case int

const (
	// TypeCase is UpperCamel, used for type and accessor names
	TypeCase Case = iota
	// MemberCase is lowerCamel, used for field names
	MemberCase
)

// Fallback is used when a raw name has no usable characters
const Fallback = "unnamed"

// Normalize strips every rune that is not a letter, digit or underscore from
// raw and re-cases the result. It never fails: a name without usable runes
// becomes Fallback and a leading digit gets an "n" prefix.
func Normalize(raw string, c Case) string {
	s := Strip(raw)
	if s == "" {
		s = Fallback
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "n" + s
	}
	return Recase(s, c)
}

// Strip removes every rune that cannot appear in an identifier
func Strip(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)
}

// Recase changes the case of the first rune of s according to c
func Recase(s string, c Case) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	switch c {
	case TypeCase:
		r = unicode.ToUpper(r)
	default:
		r = unicode.ToLower(r)
	}
	return string(r) + s[size:]
}
