// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "sukaza_backend/internals/features/finance/invoices/model"
)

type CreateFromBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
}

type ChangeInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft issued paid cancelled"`
}

type InvoiceLineItemResponse struct {
	InvoiceLineItemID string          `json:"invoice_line_item_id"`
	LineNumber        int             `json:"line_number"`
	Description       string          `json:"description"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	ItemType          string          `json:"item_type"`
	Amount            decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	InvoiceID          string                    `json:"invoice_id"`
	InvoiceBookingID   string                    `json:"invoice_booking_id"`
	InvoicePropertyID  string                    `json:"invoice_property_id"`
	InvoiceStatus      string                    `json:"invoice_status"`
	InvoiceDueDate     time.Time                 `json:"invoice_due_date"`
	InvoiceTotalAmount decimal.Decimal           `json:"invoice_total_amount"`
	InvoiceTaxTotal    decimal.Decimal           `json:"invoice_tax_total"`
	InvoicePaymentURL  *string                   `json:"invoice_payment_url,omitempty"`
	Items              []InvoiceLineItemResponse `json:"items"`
	InvoiceCreatedAt   time.Time                 `json:"invoice_created_at"`
}

func FromModelInvoice(m *model.InvoiceModel) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:          m.InvoiceID.String(),
		InvoiceBookingID:   m.InvoiceBookingID.String(),
		InvoicePropertyID:  m.InvoicePropertyID.String(),
		InvoiceStatus:      string(m.InvoiceStatus),
		InvoiceDueDate:     m.InvoiceDueDate,
		InvoiceTotalAmount: m.InvoiceTotalAmount,
		InvoiceTaxTotal:    m.InvoiceTaxTotal,
		InvoicePaymentURL:  m.InvoicePaymentURL,
		Items:              make([]InvoiceLineItemResponse, 0, len(m.Items)),
		InvoiceCreatedAt:   m.InvoiceCreatedAt,
	}
	for i := range m.Items {
		it := &m.Items[i]
		resp.Items = append(resp.Items, InvoiceLineItemResponse{
			InvoiceLineItemID: it.InvoiceLineItemID.String(),
			LineNumber:        it.InvoiceLineItemLineNumber,
			Description:       it.InvoiceLineItemDescription,
			Quantity:          it.InvoiceLineItemQuantity,
			UnitPrice:         it.InvoiceLineItemUnitPrice,
			TaxRate:           it.InvoiceLineItemTaxRate,
			TaxAmount:         it.InvoiceLineItemTaxAmount,
			ItemType:          string(it.InvoiceLineItemType),
			Amount:            it.Amount(),
		})
	}
	return resp
}

func FromModelInvoices(ms []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelInvoice(&ms[i]))
	}
	return out
}
