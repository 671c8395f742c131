// file: internals/features/finance/invoices/service/invoice_service_test.go
package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	bookingModel "sukaza_backend/internals/features/bookings/booking/model"
	billModel "sukaza_backend/internals/features/finance/bill_templates/model"
	"sukaza_backend/internals/features/finance/invoices/service"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func threeNightBooking() *bookingModel.BookingModel {
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	return &bookingModel.BookingModel{
		BookingGuestName: "A. Guest",
		BookingCheckIn:   checkIn,
		BookingCheckOut:  checkIn.AddDate(0, 0, 3),
	}
}

func TestFallbackBaseAndCleaningOnly(t *testing.T) {
	b := threeNightBooking()
	b.BookingBaseAmount = dec("300")
	b.BookingCleaningFee = dec("50")

	items := service.BuildFallbackLineItems(b)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	acc := items[0]
	if acc.InvoiceLineItemType != billModel.LineItemAccommodation {
		t.Fatalf("first item should be accommodation, got %s", acc.InvoiceLineItemType)
	}
	if !acc.InvoiceLineItemQuantity.Equal(dec("3")) {
		t.Fatalf("accommodation quantity = %s, want 3", acc.InvoiceLineItemQuantity)
	}
	if !acc.InvoiceLineItemUnitPrice.Equal(dec("100")) {
		t.Fatalf("accommodation unit price = %s, want 100", acc.InvoiceLineItemUnitPrice)
	}

	clean := items[1]
	if clean.InvoiceLineItemType != billModel.LineItemCleaning {
		t.Fatalf("second item should be cleaning, got %s", clean.InvoiceLineItemType)
	}
	if !clean.InvoiceLineItemQuantity.Equal(dec("1")) || !clean.InvoiceLineItemUnitPrice.Equal(dec("50")) {
		t.Fatalf("cleaning item = qty %s @ %s, want qty 1 @ 50",
			clean.InvoiceLineItemQuantity, clean.InvoiceLineItemUnitPrice)
	}

	for i, it := range items {
		if it.InvoiceLineItemLineNumber != i+1 {
			t.Fatalf("line %d has number %d", i, it.InvoiceLineItemLineNumber)
		}
		if !it.InvoiceLineItemTaxRate.IsZero() {
			t.Fatalf("fallback items carry tax rate 0, got %s", it.InvoiceLineItemTaxRate)
		}
	}
}

func TestFallbackFixedOrderAllFour(t *testing.T) {
	b := threeNightBooking()
	b.BookingBaseAmount = dec("300")
	b.BookingCleaningFee = dec("50")
	b.BookingExtrasAmount = dec("25")
	b.BookingTaxAmount = dec("12.50")

	items := service.BuildFallbackLineItems(b)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	wantOrder := []billModel.LineItemType{
		billModel.LineItemAccommodation,
		billModel.LineItemCleaning,
		billModel.LineItemExtras,
		billModel.LineItemTax,
	}
	for i, want := range wantOrder {
		if items[i].InvoiceLineItemType != want {
			t.Fatalf("item %d type = %s, want %s", i, items[i].InvoiceLineItemType, want)
		}
		if items[i].InvoiceLineItemLineNumber != i+1 {
			t.Fatalf("item %d line number = %d", i, items[i].InvoiceLineItemLineNumber)
		}
	}

	if items[2].InvoiceLineItemDescription != "Additional Services" {
		t.Fatalf("extras description = %q", items[2].InvoiceLineItemDescription)
	}
	if items[3].InvoiceLineItemDescription != "Taxes" {
		t.Fatalf("tax description = %q", items[3].InvoiceLineItemDescription)
	}
	if !items[3].InvoiceLineItemTaxAmount.Equal(dec("12.50")) {
		t.Fatalf("tax line amount = %s, want 12.50", items[3].InvoiceLineItemTaxAmount)
	}
}

func TestFallbackSkipsZeroBase(t *testing.T) {
	b := threeNightBooking()
	b.BookingCleaningFee = dec("50")

	items := service.BuildFallbackLineItems(b)
	if len(items) != 1 {
		t.Fatalf("expected only cleaning, got %d items", len(items))
	}
	if items[0].InvoiceLineItemType != billModel.LineItemCleaning {
		t.Fatalf("got %s, want cleaning", items[0].InvoiceLineItemType)
	}
	// Line numbers restart from 1 even when earlier slots were skipped.
	if items[0].InvoiceLineItemLineNumber != 1 {
		t.Fatalf("line number = %d, want 1", items[0].InvoiceLineItemLineNumber)
	}
}

func TestTemplateBranchCopiesItemsInOrder(t *testing.T) {
	b := threeNightBooking()
	stored := dec("7.25")
	tplItems := []billModel.BillTemplateItemModel{
		{
			BillTemplateItemLineNumber:  1,
			BillTemplateItemDescription: "Ocean Suite",
			BillTemplateItemQuantity:    dec("3"),
			BillTemplateItemUnitPrice:   dec("120"),
			BillTemplateItemTaxRate:     dec("10"),
			BillTemplateItemType:        billModel.LineItemAccommodation,
		},
		{
			BillTemplateItemLineNumber:  2,
			BillTemplateItemDescription: "Turnover Cleaning",
			BillTemplateItemQuantity:    dec("1"),
			BillTemplateItemUnitPrice:   dec("80"),
			BillTemplateItemTaxRate:     dec("5"),
			BillTemplateItemTaxAmount:   &stored,
			BillTemplateItemType:        billModel.LineItemCleaning,
		},
	}

	items := service.BuildLineItemsFromTemplate(b, tplItems)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// Accommodation description rewritten with nights and dates.
	desc := items[0].InvoiceLineItemDescription
	if !strings.Contains(desc, "3 nights") {
		t.Fatalf("accommodation description %q should mention the night count", desc)
	}
	if !strings.Contains(desc, "Mar 10, 2026") || !strings.Contains(desc, "Mar 13, 2026") {
		t.Fatalf("accommodation description %q should carry the stay range", desc)
	}
	// Non-accommodation descriptions are untouched.
	if items[1].InvoiceLineItemDescription != "Turnover Cleaning" {
		t.Fatalf("cleaning description rewritten to %q", items[1].InvoiceLineItemDescription)
	}

	// Derived tax: 3*120*10/100 = 36. Stored tax wins on the second item.
	if !items[0].InvoiceLineItemTaxAmount.Equal(dec("36")) {
		t.Fatalf("derived tax = %s, want 36", items[0].InvoiceLineItemTaxAmount)
	}
	if !items[1].InvoiceLineItemTaxAmount.Equal(stored) {
		t.Fatalf("stored tax = %s, want %s", items[1].InvoiceLineItemTaxAmount, stored)
	}

	for i, it := range items {
		if it.InvoiceLineItemLineNumber != i+1 {
			t.Fatalf("item %d line number = %d", i, it.InvoiceLineItemLineNumber)
		}
	}
}

func TestTotalsDoNotDoubleCountTaxLines(t *testing.T) {
	b := threeNightBooking()
	b.BookingBaseAmount = dec("300")
	b.BookingTaxAmount = dec("30")

	items := service.BuildFallbackLineItems(b)
	total, taxTotal := service.Totals(items)
	if !total.Equal(dec("330")) {
		t.Fatalf("total = %s, want 330", total)
	}
	if !taxTotal.Equal(dec("30")) {
		t.Fatalf("tax total = %s, want 30", taxTotal)
	}
}

func TestSameDayStayBillsOneNight(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := &bookingModel.BookingModel{
		BookingCheckIn:    checkIn,
		BookingCheckOut:   checkIn.Add(4 * time.Hour),
		BookingBaseAmount: dec("90"),
	}
	items := service.BuildFallbackLineItems(b)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].InvoiceLineItemQuantity.Equal(dec("1")) {
		t.Fatalf("quantity = %s, want 1", items[0].InvoiceLineItemQuantity)
	}
	if !items[0].InvoiceLineItemUnitPrice.Equal(dec("90")) {
		t.Fatalf("unit price = %s, want 90", items[0].InvoiceLineItemUnitPrice)
	}
}
