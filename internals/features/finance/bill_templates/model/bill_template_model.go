// file: internals/features/finance/bill_templates/model/bill_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — line item types (shared with invoice lines)
// =========================================================

type LineItemType string

const (
	LineItemAccommodation LineItemType = "accommodation"
	LineItemCleaning      LineItemType = "cleaning"
	LineItemExtras        LineItemType = "extras"
	LineItemTax           LineItemType = "tax"
	LineItemCommission    LineItemType = "commission"
	LineItemOther         LineItemType = "other"
)

// =========================================================
// MODEL — bill_templates
// =========================================================

type BillTemplateModel struct {
	// PK
	BillTemplateID uuid.UUID `gorm:"column:bill_template_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bill_template_id"`

	BillTemplateName string  `gorm:"column:bill_template_name;type:varchar(120);not null" json:"bill_template_name"`
	BillTemplateDesc *string `gorm:"column:bill_template_desc;type:text" json:"bill_template_desc,omitempty"`

	// a non-global template belongs to exactly one property;
	// a global one is linked through bill_template_properties
	BillTemplateIsGlobal   bool       `gorm:"column:bill_template_is_global;not null;default:false;index" json:"bill_template_is_global"`
	BillTemplatePropertyID *uuid.UUID `gorm:"column:bill_template_property_id;type:uuid;index" json:"bill_template_property_id,omitempty"`

	BillTemplateIsActive bool `gorm:"column:bill_template_is_active;not null;default:true" json:"bill_template_is_active"`

	// Associations
	Items      []BillTemplateItemModel     `gorm:"foreignKey:BillTemplateItemTemplateID;references:BillTemplateID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Properties []BillTemplatePropertyModel `gorm:"foreignKey:BillTemplatePropertyTemplateID;references:BillTemplateID;constraint:OnDelete:CASCADE" json:"properties,omitempty"`

	BillTemplateCreatedAt time.Time      `gorm:"column:bill_template_created_at;not null;default:now()" json:"bill_template_created_at"`
	BillTemplateUpdatedAt time.Time      `gorm:"column:bill_template_updated_at;not null;default:now()" json:"bill_template_updated_at"`
	BillTemplateDeletedAt gorm.DeletedAt `gorm:"column:bill_template_deleted_at;index" json:"-"`
}

func (BillTemplateModel) TableName() string {
	return "bill_templates"
}

func (m *BillTemplateModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.BillTemplateCreatedAt.IsZero() {
		m.BillTemplateCreatedAt = now
	}
	m.BillTemplateUpdatedAt = now
	return nil
}

func (m *BillTemplateModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.BillTemplateUpdatedAt = time.Now()
	return nil
}

// TotalAmount sums every item's gross amount (qty*unit + tax).
func (m *BillTemplateModel) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range m.Items {
		total = total.Add(m.Items[i].GrossAmount())
	}
	return total
}

// =========================================================
// MODEL — bill_template_items
// =========================================================

type BillTemplateItemModel struct {
	BillTemplateItemID         uuid.UUID `gorm:"column:bill_template_item_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bill_template_item_id"`
	BillTemplateItemTemplateID uuid.UUID `gorm:"column:bill_template_item_template_id;type:uuid;not null;index;uniqueIndex:uniq_template_line,priority:1" json:"bill_template_item_template_id"`

	// 1-based, contiguous within a template
	BillTemplateItemLineNumber int `gorm:"column:bill_template_item_line_number;not null;check:bill_template_item_line_number>=1;uniqueIndex:uniq_template_line,priority:2" json:"bill_template_item_line_number"`

	BillTemplateItemDescription string          `gorm:"column:bill_template_item_description;type:text;not null" json:"bill_template_item_description"`
	BillTemplateItemQuantity    decimal.Decimal `gorm:"column:bill_template_item_quantity;type:numeric(12,2);not null" json:"bill_template_item_quantity"`
	BillTemplateItemUnitPrice   decimal.Decimal `gorm:"column:bill_template_item_unit_price;type:numeric(12,2);not null" json:"bill_template_item_unit_price"`
	BillTemplateItemTaxRate     decimal.Decimal `gorm:"column:bill_template_item_tax_rate;type:numeric(6,3);not null;default:0" json:"bill_template_item_tax_rate"`

	// precomputed on file; nil means derive as qty*unit*rate/100
	BillTemplateItemTaxAmount *decimal.Decimal `gorm:"column:bill_template_item_tax_amount;type:numeric(12,2)" json:"bill_template_item_tax_amount,omitempty"`

	BillTemplateItemType LineItemType `gorm:"column:bill_template_item_type;type:varchar(20);not null;default:'other'" json:"bill_template_item_type"`

	BillTemplateItemCreatedAt time.Time `gorm:"column:bill_template_item_created_at;not null;default:now()" json:"bill_template_item_created_at"`
}

func (BillTemplateItemModel) TableName() string {
	return "bill_template_items"
}

// TaxAmountOrDerived returns the stored tax amount when present,
// else qty*unit_price*tax_rate/100.
func (it *BillTemplateItemModel) TaxAmountOrDerived() decimal.Decimal {
	if it.BillTemplateItemTaxAmount != nil {
		return *it.BillTemplateItemTaxAmount
	}
	return it.BillTemplateItemQuantity.
		Mul(it.BillTemplateItemUnitPrice).
		Mul(it.BillTemplateItemTaxRate).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

// GrossAmount = qty*unit_price + tax.
func (it *BillTemplateItemModel) GrossAmount() decimal.Decimal {
	return it.BillTemplateItemQuantity.
		Mul(it.BillTemplateItemUnitPrice).
		Add(it.TaxAmountOrDerived()).
		Round(2)
}

// =========================================================
// MODEL — bill_template_properties (assignment join)
// =========================================================

type BillTemplatePropertyModel struct {
	BillTemplatePropertyID         uuid.UUID `gorm:"column:bill_template_property_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bill_template_property_id"`
	BillTemplatePropertyTemplateID uuid.UUID `gorm:"column:bill_template_property_template_id;type:uuid;not null;index;uniqueIndex:uniq_template_property,priority:1" json:"bill_template_property_template_id"`
	BillTemplatePropertyPropertyID uuid.UUID `gorm:"column:bill_template_property_property_id;type:uuid;not null;index;uniqueIndex:uniq_template_property,priority:2" json:"bill_template_property_property_id"`

	BillTemplatePropertyCreatedAt time.Time `gorm:"column:bill_template_property_created_at;not null;default:now()" json:"bill_template_property_created_at"`
}

func (BillTemplatePropertyModel) TableName() string {
	return "bill_template_properties"
}
