package helper_test

import (
	"strings"
	"testing"

	helper "sukaza_backend/internals/helpers"
)

var invoiceSort = map[string]string{
	"created_at": "invoice_created_at",
	"due_date":   "invoice_due_date",
}

func TestSafeOrderClause_BareExpressionForGorm(t *testing.T) {
	p := helper.Params{SortBy: "created_at", SortOrder: "desc"}

	clause, err := p.SafeOrderClause(invoiceSort, "created_at")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// gorm's Order() adds the keyword; the helper must not
	if strings.Contains(strings.ToUpper(clause), "ORDER BY") {
		t.Fatalf("clause must not carry the ORDER BY keyword, got %q", clause)
	}
	if clause != "invoice_created_at DESC" {
		t.Fatalf("unexpected clause: %q", clause)
	}
}

func TestSafeOrderClause_UnknownKeyFallsBackToDefault(t *testing.T) {
	p := helper.Params{SortBy: "invoice_created_at; DROP TABLE invoices", SortOrder: "asc"}

	clause, err := p.SafeOrderClause(invoiceSort, "due_date")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "invoice_due_date ASC" {
		t.Fatalf("expected fallback to default column, got %q", clause)
	}
}

func TestSafeOrderClause_BadDefaultErrors(t *testing.T) {
	p := helper.Params{SortBy: "nope"}
	if _, err := p.SafeOrderClause(invoiceSort, "also-nope"); err == nil {
		t.Fatalf("expected error when the default key is not whitelisted")
	}
}

func TestSafeOrderClause_DirectionNormalization(t *testing.T) {
	for raw, want := range map[string]string{"asc": "ASC", "ASC": "ASC", "desc": "DESC", "sideways": "DESC", "": "DESC"} {
		p := helper.Params{SortBy: "created_at", SortOrder: raw}
		clause, err := p.SafeOrderClause(invoiceSort, "created_at")
		if err != nil {
			t.Fatalf("unexpected error for order %q: %v", raw, err)
		}
		if !strings.HasSuffix(clause, " "+want) {
			t.Fatalf("order %q: expected direction %s, got %q", raw, want, clause)
		}
	}
}

func TestBuildMeta_PageLinks(t *testing.T) {
	meta := helper.BuildMeta(95, helper.Params{Page: 2, PerPage: 25})

	if meta.TotalPages != 4 {
		t.Fatalf("expected 4 pages, got %d", meta.TotalPages)
	}
	if !meta.HasPrev || !meta.HasNext {
		t.Fatalf("page 2 of 4 must have both neighbors")
	}
	if meta.PrevPage == nil || *meta.PrevPage != 1 {
		t.Fatalf("unexpected prev page: %v", meta.PrevPage)
	}
	if meta.NextPage == nil || *meta.NextPage != 3 {
		t.Fatalf("unexpected next page: %v", meta.NextPage)
	}
}

func TestBuildMeta_EmptySet(t *testing.T) {
	meta := helper.BuildMeta(0, helper.Params{Page: 1, PerPage: 25})
	if meta.TotalPages != 0 || meta.HasNext || meta.HasPrev {
		t.Fatalf("empty set must have no pages or neighbors: %+v", meta)
	}
}
