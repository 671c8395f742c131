// file: internals/features/finance/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billModel "sukaza_backend/internals/features/finance/bill_templates/model"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:  {InvoiceIssued, InvoiceCancelled},
	InvoiceIssued: {InvoicePaid, InvoiceCancelled},
}

// CanTransition reports whether an invoice may move between the two states.
// Paid and cancelled are terminal.
func CanTransition(from, to InvoiceStatus) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// =====================================================
// InvoiceModel
// =====================================================

type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	InvoiceBookingID  uuid.UUID `gorm:"column:invoice_booking_id;type:uuid;not null;index" json:"invoice_booking_id"`
	InvoicePropertyID uuid.UUID `gorm:"column:invoice_property_id;type:uuid;not null;index" json:"invoice_property_id"`

	InvoiceStatus  InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'draft';index" json:"invoice_status"`
	InvoiceDueDate time.Time     `gorm:"column:invoice_due_date;type:timestamptz;not null" json:"invoice_due_date"`

	InvoiceTotalAmount decimal.Decimal `gorm:"column:invoice_total_amount;type:numeric(12,2);not null;default:0" json:"invoice_total_amount"`
	InvoiceTaxTotal    decimal.Decimal `gorm:"column:invoice_tax_total;type:numeric(12,2);not null;default:0" json:"invoice_tax_total"`

	// Midtrans Snap link, set once the invoice is issued and a payment
	// link is requested.
	InvoicePaymentURL *string `gorm:"column:invoice_payment_url;type:text" json:"invoice_payment_url,omitempty"`

	Items []InvoiceLineItemModel `gorm:"foreignKey:InvoiceLineItemInvoiceID;references:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now()" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) error {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

// =====================================================
// InvoiceLineItemModel
// =====================================================

type InvoiceLineItemModel struct {
	InvoiceLineItemID        uuid.UUID `gorm:"column:invoice_line_item_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_line_item_id"`
	InvoiceLineItemInvoiceID uuid.UUID `gorm:"column:invoice_line_item_invoice_id;type:uuid;not null;index;uniqueIndex:uniq_invoice_line,priority:1" json:"invoice_line_item_invoice_id"`

	// Contiguous 1-based, assigned at generation time, preserved after.
	InvoiceLineItemLineNumber int `gorm:"column:invoice_line_item_line_number;not null;check:invoice_line_item_line_number>=1;uniqueIndex:uniq_invoice_line,priority:2" json:"invoice_line_item_line_number"`

	InvoiceLineItemDescription string          `gorm:"column:invoice_line_item_description;type:text;not null" json:"invoice_line_item_description"`
	InvoiceLineItemQuantity    decimal.Decimal `gorm:"column:invoice_line_item_quantity;type:numeric(12,2);not null" json:"invoice_line_item_quantity"`
	InvoiceLineItemUnitPrice   decimal.Decimal `gorm:"column:invoice_line_item_unit_price;type:numeric(12,2);not null" json:"invoice_line_item_unit_price"`
	InvoiceLineItemTaxRate     decimal.Decimal `gorm:"column:invoice_line_item_tax_rate;type:numeric(6,3);not null;default:0" json:"invoice_line_item_tax_rate"`
	InvoiceLineItemTaxAmount   decimal.Decimal `gorm:"column:invoice_line_item_tax_amount;type:numeric(12,2);not null;default:0" json:"invoice_line_item_tax_amount"`

	InvoiceLineItemType billModel.LineItemType `gorm:"column:invoice_line_item_type;type:varchar(20);not null;default:'other'" json:"invoice_line_item_type"`

	InvoiceLineItemCreatedAt time.Time `gorm:"column:invoice_line_item_created_at;not null;default:now()" json:"invoice_line_item_created_at"`
}

func (InvoiceLineItemModel) TableName() string { return "invoice_line_items" }

// Amount is the line subtotal before tax.
func (it *InvoiceLineItemModel) Amount() decimal.Decimal {
	return it.InvoiceLineItemQuantity.Mul(it.InvoiceLineItemUnitPrice)
}
