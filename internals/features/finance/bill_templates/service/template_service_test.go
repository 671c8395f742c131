package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "sukaza_backend/internals/features/finance/bill_templates/model"
	"sukaza_backend/internals/features/finance/bill_templates/service"
)

func TestValidateDuplicateName_EmptyName(t *testing.T) {
	if err := service.ValidateDuplicateName("   ", "Standard Stay", nil); err != service.ErrNameEmpty {
		t.Fatalf("expected ErrNameEmpty, got %v", err)
	}
}

func TestValidateDuplicateName_SameAsSource(t *testing.T) {
	err := service.ValidateDuplicateName("Standard Stay", "Standard Stay", []string{"Standard Stay"})
	if err != service.ErrNameSame {
		t.Fatalf("expected ErrNameSame, got %v", err)
	}
}

func TestValidateDuplicateName_SourceComparisonIsCaseSensitive(t *testing.T) {
	// "standard stay" differs from the source case-sensitively, but collides
	// case-insensitively with the existing name, so the taken check fires.
	err := service.ValidateDuplicateName("standard stay", "Standard Stay", []string{"Standard Stay"})
	if err != service.ErrNameTaken {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestValidateDuplicateName_TakenByOtherTemplate(t *testing.T) {
	existing := []string{"Standard Stay", "LONG TERM"}
	if err := service.ValidateDuplicateName("long term", "Standard Stay", existing); err != service.ErrNameTaken {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestValidateDuplicateName_OK(t *testing.T) {
	existing := []string{"Standard Stay", "Long Term"}
	if err := service.ValidateDuplicateName("Winter Special", "Standard Stay", existing); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestDiffAssignments_NeverTouchesIntersection(t *testing.T) {
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()

	// {P1,P2} -> {P2,P3}: assign P3, unassign P1, never touch P2
	toAssign, toUnassign := service.DiffAssignments(
		[]uuid.UUID{p1, p2},
		[]uuid.UUID{p2, p3},
	)

	if len(toAssign) != 1 || toAssign[0] != p3 {
		t.Errorf("toAssign = %v, want [%v]", toAssign, p3)
	}
	if len(toUnassign) != 1 || toUnassign[0] != p1 {
		t.Errorf("toUnassign = %v, want [%v]", toUnassign, p1)
	}
}

func TestDiffAssignments_EmptySides(t *testing.T) {
	p1 := uuid.New()

	toAssign, toUnassign := service.DiffAssignments(nil, []uuid.UUID{p1})
	if len(toAssign) != 1 || len(toUnassign) != 0 {
		t.Errorf("from empty: assign=%v unassign=%v", toAssign, toUnassign)
	}

	toAssign, toUnassign = service.DiffAssignments([]uuid.UUID{p1}, nil)
	if len(toAssign) != 0 || len(toUnassign) != 1 {
		t.Errorf("to empty: assign=%v unassign=%v", toAssign, toUnassign)
	}
}

func TestCopyItems_FreshContiguousLineNumbers(t *testing.T) {
	srcTpl := uuid.New()
	tax := decimal.NewFromFloat(7.5)
	src := []model.BillTemplateItemModel{
		{
			BillTemplateItemTemplateID:  srcTpl,
			BillTemplateItemLineNumber:  3, // deliberately gapped
			BillTemplateItemDescription: "Accommodation",
			BillTemplateItemQuantity:    decimal.NewFromInt(2),
			BillTemplateItemUnitPrice:   decimal.NewFromInt(100),
			BillTemplateItemTaxRate:     decimal.NewFromInt(10),
			BillTemplateItemTaxAmount:   &tax,
			BillTemplateItemType:        model.LineItemAccommodation,
		},
		{
			BillTemplateItemTemplateID:  srcTpl,
			BillTemplateItemLineNumber:  7,
			BillTemplateItemDescription: "Cleaning",
			BillTemplateItemQuantity:    decimal.NewFromInt(1),
			BillTemplateItemUnitPrice:   decimal.NewFromInt(50),
			BillTemplateItemTaxRate:     decimal.Zero,
			BillTemplateItemType:        model.LineItemCleaning,
		},
	}

	dstTpl := uuid.New()
	out := service.CopyItems(src, dstTpl)

	if len(out) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out))
	}
	for i, it := range out {
		if it.BillTemplateItemLineNumber != i+1 {
			t.Errorf("line %d: got line_number %d, want %d", i, it.BillTemplateItemLineNumber, i+1)
		}
		if it.BillTemplateItemTemplateID != dstTpl {
			t.Errorf("line %d: copied item still points at template %v", i, it.BillTemplateItemTemplateID)
		}
	}

	// the tax amount pointer must not alias the source row
	if out[0].BillTemplateItemTaxAmount == src[0].BillTemplateItemTaxAmount {
		t.Errorf("tax amount pointer aliases the source item")
	}
	if !out[0].BillTemplateItemTaxAmount.Equal(tax) {
		t.Errorf("tax amount value changed in copy: %s", out[0].BillTemplateItemTaxAmount)
	}
}

func TestTaxAmountOrDerived(t *testing.T) {
	it := model.BillTemplateItemModel{
		BillTemplateItemQuantity:  decimal.NewFromInt(2),
		BillTemplateItemUnitPrice: decimal.NewFromInt(100),
		BillTemplateItemTaxRate:   decimal.NewFromInt(10),
	}
	if got := it.TaxAmountOrDerived(); !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("derived tax = %s, want 20", got)
	}

	stored := decimal.NewFromFloat(12.34)
	it.BillTemplateItemTaxAmount = &stored
	if got := it.TaxAmountOrDerived(); !got.Equal(stored) {
		t.Errorf("stored tax = %s, want 12.34", got)
	}
}
