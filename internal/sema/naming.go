package sema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type casing uint8

const (
	snakeCase casing = iota
	pascalCase
)

func isSnakeCase(name string) bool {
	for _, r := range name {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isPascalCase(name string) bool {
	if name == "" || strings.ContainsRune(name, '_') {
		return false
	}
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

// namer builds suggested spellings for badly cased names.
// cases.Caser keeps state, so one namer belongs to one checker.
type namer struct {
	title cases.Caser
	lower cases.Caser
}

func newNamer() *namer {
	return &namer{
		title: cases.Title(language.Und, cases.NoLower),
		lower: cases.Lower(language.Und),
	}
}

// follows reports whether name satisfies the convention.
func (n *namer) follows(name string, want casing) bool {
	if want == pascalCase {
		return isPascalCase(name)
	}
	return isSnakeCase(name)
}

// suggest converts name into the wanted convention: foo_bar -> FooBar and
// FooBar -> foo_bar.
func (n *namer) suggest(name string, want casing) string {
	if want == pascalCase {
		var sb strings.Builder
		for part := range strings.SplitSeq(name, "_") {
			if part == "" {
				continue
			}
			sb.WriteString(n.title.String(part))
		}
		if sb.Len() == 0 {
			return name
		}
		return sb.String()
	}

	var sb strings.Builder
	prevLower := false
	for _, r := range name {
		if unicode.IsUpper(r) && prevLower {
			sb.WriteByte('_')
		}
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		sb.WriteRune(r)
	}
	return n.lower.String(sb.String())
}
