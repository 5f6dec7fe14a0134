package match

import (
	"strings"
	"unicode"
)

// SplitPascalCase splits a name written as concatenated capitalized words.
// A new word starts at every uppercase rune except the first one, so casing
// and non-ASCII letters are preserved:
//   - "BarName" -> ["Bar", "Name"]
//   - "ÆblerPærer" -> ["Æbler", "Pærer"]
//   - "ID" -> ["I", "D"]
//   - "" -> []
func SplitPascalCase(s string) []string {
	if s == "" {
		return []string{}
	}

	var (
		words []string
		start int
	)

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}

	return append(words, s[start:])
}

// SplitOnFirstWord returns the first word of a PascalCase name and the rest of it.
//   - "FooBarBaz" -> ("Foo", "BarBaz")
//   - "Foo" -> ("Foo", "")
func SplitOnFirstWord(s string) (first, remaining string) {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return s[:i], s[i:]
		}
	}

	return s, ""
}

// NormalizeIdent folds an identifier for fuzzy comparison: lowercase, without
// separators. "Last_Name", "lastName" and "LastName" all become "lastname".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
