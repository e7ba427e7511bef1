package diag_test

import (
	"testing"

	"iomode/internal/diag"
	"iomode/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	d := diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexUnterminatedBlockComment}
	if !bag.Add(d) || !bag.Add(d) {
		t.Fatalf("first two adds must succeed")
	}
	if bag.Add(d) {
		t.Fatalf("third add must be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning})
	if bag.HasErrors() {
		t.Fatalf("warning alone is not an error")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected HasWarnings")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors after error add")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(8)
	late := diag.Diagnostic{Code: diag.LexUnknownChar, Primary: source.Span{Start: 9, End: 10}}
	early := diag.Diagnostic{Code: diag.LexUnknownChar, Primary: source.Span{Start: 1, End: 2}}
	bag.Add(late)
	bag.Add(early)
	bag.Add(late) // duplicate

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("dedup left %d items, want 2", len(items))
	}
	if items[0].Primary.Start != 1 {
		t.Fatalf("sort must put the earliest span first, got %v", items[0].Primary)
	}
}
