package lexer

import (
	"strings"

	"talpa/internal/token"
)

// Candidate is one word the matcher may accept. When Follow is not empty the
// character right after the word must be in Follow (end of input is accepted
// as well); otherwise the candidate is rejected.
type Candidate struct {
	Text   string
	Follow string
}

// Match scans forward one character at a time eliminating candidates that
// stop agreeing with the input. It returns the index of the first candidate,
// in caller order, that is fully consumed and satisfies its Follow set. When
// nothing matches the cursor is restored to where it started and -1 is
// returned.
func (c *Cursor) Match(cands []Candidate) int {
	start := c.Mark()

	alive := make([]int, 0, len(cands))
	for i := range cands {
		if cands[i].Text != "" {
			alive = append(alive, i)
		}
	}

	for n := 0; len(alive) > 0; n++ {
		b, ok := c.Next()
		if !ok {
			break
		}
		next := alive[:0:0]
		for _, i := range alive {
			text := cands[i].Text
			if text[n] != b {
				continue
			}
			if len(text) > n+1 {
				next = append(next, i)
				continue
			}
			if c.followOK(cands[i].Follow) {
				return i
			}
		}
		alive = next
	}

	c.Reset(start)
	return -1
}

func (c *Cursor) followOK(follow string) bool {
	if follow == "" {
		return true
	}
	b, ok := c.Peek()
	if !ok {
		return true
	}
	return strings.ContainsRune(follow, rune(b))
}

// MatchKind runs Match over token kinds, using each kind's spelling and
// follow set. It returns token.Invalid when nothing matches.
func (c *Cursor) MatchKind(kinds ...token.Kind) token.Kind {
	cands := make([]Candidate, len(kinds))
	for i, k := range kinds {
		cands[i] = Candidate{Text: k.Text(), Follow: k.Follow()}
	}
	if i := c.Match(cands); i >= 0 {
		return kinds[i]
	}
	return token.Invalid
}
