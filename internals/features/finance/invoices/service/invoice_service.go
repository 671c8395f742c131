// file: internals/features/finance/invoices/service/invoice_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	bookingModel "sukaza_backend/internals/features/bookings/booking/model"
	billModel "sukaza_backend/internals/features/finance/bill_templates/model"
	model "sukaza_backend/internals/features/finance/invoices/model"
)

var (
	ErrBookingGone  = errors.New("booking not found")
	ErrInvoiceEmpty = errors.New("booking has no billable amounts and no usable template")
)

// rewriteAccommodation embeds the night count and stay range into an
// accommodation line description so the invoice is readable without the
// booking open next to it.
func rewriteAccommodation(desc string, booking *bookingModel.BookingModel, nights int) string {
	noun := "nights"
	if nights == 1 {
		noun = "night"
	}
	return fmt.Sprintf("%s (%d %s, %s to %s)",
		desc, nights, noun,
		booking.BookingCheckIn.Format("Jan 02, 2006"),
		booking.BookingCheckOut.Format("Jan 02, 2006"))
}

// BuildLineItemsFromTemplate copies template items onto a fresh invoice line
// set: quantity, unit price and tax rate carry over per item; tax amount uses
// the stored value when present, else quantity*price*rate/100. Accommodation
// descriptions are rewritten with the stay details. Line numbers are assigned
// 1..N in template item order.
func BuildLineItemsFromTemplate(booking *bookingModel.BookingModel, items []billModel.BillTemplateItemModel) []model.InvoiceLineItemModel {
	nights := booking.Nights()
	out := make([]model.InvoiceLineItemModel, 0, len(items))
	for i := range items {
		src := &items[i]
		desc := src.BillTemplateItemDescription
		if src.BillTemplateItemType == billModel.LineItemAccommodation {
			desc = rewriteAccommodation(desc, booking, nights)
		}
		out = append(out, model.InvoiceLineItemModel{
			InvoiceLineItemLineNumber:  i + 1,
			InvoiceLineItemDescription: desc,
			InvoiceLineItemQuantity:    src.BillTemplateItemQuantity,
			InvoiceLineItemUnitPrice:   src.BillTemplateItemUnitPrice,
			InvoiceLineItemTaxRate:     src.BillTemplateItemTaxRate,
			InvoiceLineItemTaxAmount:   src.TaxAmountOrDerived(),
			InvoiceLineItemType:        src.BillTemplateItemType,
		})
	}
	return out
}

// BuildFallbackLineItems synthesizes up to four items in fixed order from the
// booking's own amounts: accommodation, cleaning, extras, taxes. Zero or
// absent amounts are skipped. Tax rate is 0 on every fallback item since the
// tax is carried as a pre-baked amount.
func BuildFallbackLineItems(booking *bookingModel.BookingModel) []model.InvoiceLineItemModel {
	nights := booking.Nights()
	out := make([]model.InvoiceLineItemModel, 0, 4)

	appendItem := func(desc string, qty, unitPrice, taxAmount decimal.Decimal, itemType billModel.LineItemType) {
		out = append(out, model.InvoiceLineItemModel{
			InvoiceLineItemLineNumber:  len(out) + 1,
			InvoiceLineItemDescription: desc,
			InvoiceLineItemQuantity:    qty,
			InvoiceLineItemUnitPrice:   unitPrice,
			InvoiceLineItemTaxRate:     decimal.Zero,
			InvoiceLineItemTaxAmount:   taxAmount,
			InvoiceLineItemType:        itemType,
		})
	}

	one := decimal.NewFromInt(1)

	if booking.BookingBaseAmount.IsPositive() {
		unit := booking.BookingBaseAmount.DivRound(decimal.NewFromInt(int64(nights)), 2)
		appendItem(
			rewriteAccommodation("Accommodation", booking, nights),
			decimal.NewFromInt(int64(nights)), unit, decimal.Zero,
			billModel.LineItemAccommodation,
		)
	}
	if booking.BookingCleaningFee.IsPositive() {
		appendItem("Cleaning Fee", one, booking.BookingCleaningFee, decimal.Zero, billModel.LineItemCleaning)
	}
	if booking.BookingExtrasAmount.IsPositive() {
		appendItem("Additional Services", one, booking.BookingExtrasAmount, decimal.Zero, billModel.LineItemExtras)
	}
	if booking.BookingTaxAmount.IsPositive() {
		appendItem("Taxes", one, booking.BookingTaxAmount, booking.BookingTaxAmount, billModel.LineItemTax)
	}
	return out
}

// Totals sums the line set: total includes tax, taxTotal is tax alone.
func Totals(items []model.InvoiceLineItemModel) (total, taxTotal decimal.Decimal) {
	total = decimal.Zero
	taxTotal = decimal.Zero
	for i := range items {
		it := &items[i]
		if it.InvoiceLineItemType == billModel.LineItemTax {
			// Fallback tax lines carry their whole amount as tax; do not
			// double count it into the subtotal.
			total = total.Add(it.InvoiceLineItemTaxAmount)
			taxTotal = taxTotal.Add(it.InvoiceLineItemTaxAmount)
			continue
		}
		total = total.Add(it.Amount()).Add(it.InvoiceLineItemTaxAmount)
		taxTotal = taxTotal.Add(it.InvoiceLineItemTaxAmount)
	}
	return total, taxTotal
}

// CreateFromBooking generates a draft invoice for the booking. The template
// branch is taken when the booking references a template that resolves to at
// least one item; an unresolved or empty template falls through to the
// fallback, it never fails the operation. Header and items are written in a
// single transaction.
func CreateFromBooking(db *gorm.DB, bookingID uuid.UUID) (*model.InvoiceModel, error) {
	var booking bookingModel.BookingModel
	if err := db.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingGone
		}
		return nil, err
	}

	var items []model.InvoiceLineItemModel
	if booking.BookingBillTemplateID != nil {
		var tpl billModel.BillTemplateModel
		err := db.
			Preload("Items", func(q *gorm.DB) *gorm.DB {
				return q.Order("bill_template_item_line_number ASC")
			}).
			First(&tpl, "bill_template_id = ?", *booking.BookingBillTemplateID).Error
		switch {
		case err == nil && len(tpl.Items) > 0:
			items = BuildLineItemsFromTemplate(&booking, tpl.Items)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
		// Missing template or zero items: fall through.
	}
	if len(items) == 0 {
		items = BuildFallbackLineItems(&booking)
	}
	if len(items) == 0 {
		return nil, ErrInvoiceEmpty
	}

	total, taxTotal := Totals(items)
	inv := &model.InvoiceModel{
		InvoiceBookingID:   booking.BookingID,
		InvoicePropertyID:  booking.BookingPropertyID,
		InvoiceStatus:      model.InvoiceDraft,
		InvoiceDueDate:     booking.BookingCheckIn,
		InvoiceTotalAmount: total,
		InvoiceTaxTotal:    taxTotal,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceLineItemInvoiceID = inv.InvoiceID
		}
		return tx.Create(&items).Error
	}); err != nil {
		return nil, err
	}

	inv.Items = items
	return inv, nil
}
