package lexer

import (
	"testing"

	"talpa/internal/token"
)

func TestMatchKeywordNeedsDelimiter(t *testing.T) {
	c := NewCursor(createFile("forever"))
	if k := c.MatchKind(token.KwFor); k != token.Invalid {
		t.Fatalf("forever must not match for, got %v", k)
	}
	if c.Off != 0 || c.Line != 1 {
		t.Fatalf("cursor not rewound: off=%d line=%d", c.Off, c.Line)
	}

	c = NewCursor(createFile("for x"))
	if k := c.MatchKind(token.KwFor); k != token.KwFor {
		t.Fatalf("expected for, got %v", k)
	}
	if c.Off != 3 {
		t.Fatalf("expected cursor after keyword, got %d", c.Off)
	}
}

func TestMatchPicksAmongCandidates(t *testing.T) {
	c := NewCursor(createFile("const x"))
	k := c.MatchKind(token.KwFn, token.KwContinue, token.KwConst, token.KwStruct)
	if k != token.KwConst {
		t.Fatalf("expected const, got %v", k)
	}
}

func TestMatchFollowSet(t *testing.T) {
	c := NewCursor(createFile("loop{"))
	if k := c.MatchKind(token.KwLoop); k != token.KwLoop {
		t.Fatalf("loop{ should match loop, got %v", k)
	}
	c = NewCursor(createFile("break}"))
	if k := c.MatchKind(token.KwBreak); k != token.KwBreak {
		t.Fatalf("break} should match break, got %v", k)
	}
	c = NewCursor(createFile("break"))
	if k := c.MatchKind(token.KwBreak); k != token.KwBreak {
		t.Fatalf("break at end of input should match, got %v", k)
	}
}

func TestMatchFirstInOrderWins(t *testing.T) {
	c := NewCursor(createFile("ab"))
	i := c.Match([]Candidate{{Text: "ab"}, {Text: "ab"}})
	if i != 0 {
		t.Fatalf("expected first candidate, got %d", i)
	}
}

func TestMatchRewindsAcrossComments(t *testing.T) {
	c := NewCursor(createFile("/*x\n*/fo"))
	if k := c.MatchKind(token.KwFor); k != token.Invalid {
		t.Fatalf("expected no match, got %v", k)
	}
	if c.Off != 0 || c.Line != 1 {
		t.Fatalf("cursor not rewound: off=%d line=%d", c.Off, c.Line)
	}
}
