package diag

import (
	"testing"

	"talpa/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(New(SevError, SemaNoName, source.Location{Off: uint32(i), Line: 1}, ""))
		if i < 2 && !ok {
			t.Fatalf("add %d rejected", i)
		}
		if i == 2 && ok {
			t.Fatalf("add past limit accepted")
		}
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagSplitsWarningsAndErrors(t *testing.T) {
	b := NewBag(0)
	r := BagReporter{Bag: b}
	ReportWarning(r, SemaEmptyEnum, source.Location{Line: 1}, "").Emit()
	ReportError(r, SemaNameAlreadyExists, source.Location{Off: 4, Line: 2}, "").Emit()
	ReportWarning(r, SemaUnreachableCode, source.Location{Off: 9, Line: 3}, "").Emit()

	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected both errors and warnings")
	}
	warns := b.Warnings()
	if len(warns) != 2 || warns[0].Code != SemaEmptyEnum || warns[1].Code != SemaUnreachableCode {
		t.Fatalf("unexpected warnings: %+v", warns)
	}
	errs := b.Errors()
	if len(errs) != 1 || errs[0].Message != "Name already exists" {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(0)
	rb := ReportError(BagReporter{Bag: b}, SemaKeywordAsName, source.Location{Line: 1}, "").
		WithNote(source.Location{Line: 1}, "rename it")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("expected single diagnostic, got %d", b.Len())
	}
	if got := b.Items()[0].Notes; len(got) != 1 || got[0].Msg != "rename it" {
		t.Fatalf("note lost: %+v", got)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWarning, SemaUnreachableCode, source.Location{Off: 10, Line: 2}, ""))
	b.Add(New(SevError, SemaNoName, source.Location{Off: 1, Line: 1}, ""))
	b.Add(New(SevError, SemaNoName, source.Location{Off: 1, Line: 1}, ""))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 after dedup, got %d", len(items))
	}
	if items[0].Code != SemaNoName {
		t.Fatalf("expected SemaNoName first, got %s", items[0].Code)
	}
}
