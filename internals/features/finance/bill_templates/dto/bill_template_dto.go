// file: internals/features/finance/bill_templates/dto/bill_template_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "sukaza_backend/internals/features/finance/bill_templates/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type TemplateItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   *decimal.Decimal `json:"tax_amount"`
	ItemType    string          `json:"item_type" validate:"omitempty,oneof=accommodation cleaning extras tax commission other"`
}

func (r *TemplateItemRequest) toModel(templateID uuid.UUID, lineNumber int) model.BillTemplateItemModel {
	itemType := model.LineItemType(r.ItemType)
	if itemType == "" {
		itemType = model.LineItemOther
	}
	return model.BillTemplateItemModel{
		BillTemplateItemTemplateID:  templateID,
		BillTemplateItemLineNumber:  lineNumber,
		BillTemplateItemDescription: strings.TrimSpace(r.Description),
		BillTemplateItemQuantity:    r.Quantity,
		BillTemplateItemUnitPrice:   r.UnitPrice,
		BillTemplateItemTaxRate:     r.TaxRate,
		BillTemplateItemTaxAmount:   r.TaxAmount,
		BillTemplateItemType:        itemType,
	}
}

// ItemsToModels assigns 1-based contiguous line numbers in request order.
func ItemsToModels(items []TemplateItemRequest, templateID uuid.UUID) []model.BillTemplateItemModel {
	out := make([]model.BillTemplateItemModel, 0, len(items))
	for i := range items {
		out = append(out, items[i].toModel(templateID, i+1))
	}
	return out
}

type CreateBillTemplateRequest struct {
	BillTemplateName     string                `json:"bill_template_name" validate:"required,max=120"`
	BillTemplateDesc     *string               `json:"bill_template_desc"`
	BillTemplateIsGlobal bool                  `json:"bill_template_is_global"`
	// required when is_global is false
	BillTemplatePropertyID *uuid.UUID          `json:"bill_template_property_id" validate:"required_if=BillTemplateIsGlobal false"`
	BillTemplateIsActive   *bool               `json:"bill_template_is_active"`
	Items                  []TemplateItemRequest `json:"items" validate:"dive"`
}

func (r *CreateBillTemplateRequest) ToModel() *model.BillTemplateModel {
	m := &model.BillTemplateModel{
		BillTemplateName:     strings.TrimSpace(r.BillTemplateName),
		BillTemplateDesc:     r.BillTemplateDesc,
		BillTemplateIsGlobal: r.BillTemplateIsGlobal,
		BillTemplateIsActive: true,
	}
	if !r.BillTemplateIsGlobal {
		m.BillTemplatePropertyID = r.BillTemplatePropertyID
	}
	if r.BillTemplateIsActive != nil {
		m.BillTemplateIsActive = *r.BillTemplateIsActive
	}
	return m
}

/* =========================================================
   REQUEST: Patch / Duplicate / Assign
   ========================================================= */

type PatchBillTemplateRequest struct {
	BillTemplateName     *string `json:"bill_template_name" validate:"omitempty,max=120"`
	BillTemplateDesc     *string `json:"bill_template_desc"`
	BillTemplateIsActive *bool   `json:"bill_template_is_active"`
}

func (r *PatchBillTemplateRequest) ApplyTo(m *model.BillTemplateModel) {
	if r.BillTemplateName != nil {
		m.BillTemplateName = strings.TrimSpace(*r.BillTemplateName)
	}
	if r.BillTemplateDesc != nil {
		m.BillTemplateDesc = r.BillTemplateDesc
	}
	if r.BillTemplateIsActive != nil {
		m.BillTemplateIsActive = *r.BillTemplateIsActive
	}
}

type DuplicateBillTemplateRequest struct {
	NewName string `json:"new_name" validate:"required,max=120"`
}

type AssignPropertiesRequest struct {
	PropertyIDs []uuid.UUID `json:"property_ids" validate:"required"`
}

type ReplaceItemsRequest struct {
	Items []TemplateItemRequest `json:"items" validate:"required,dive"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type TemplateItemResponse struct {
	BillTemplateItemID string          `json:"bill_template_item_id"`
	LineNumber         int             `json:"line_number"`
	Description        string          `json:"description"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	ItemType           string          `json:"item_type"`
}

type BillTemplateResponse struct {
	BillTemplateID       string                 `json:"bill_template_id"`
	BillTemplateName     string                 `json:"bill_template_name"`
	BillTemplateDesc     *string                `json:"bill_template_desc,omitempty"`
	BillTemplateIsGlobal bool                   `json:"bill_template_is_global"`
	BillTemplatePropertyID *string              `json:"bill_template_property_id,omitempty"`
	BillTemplateIsActive bool                   `json:"bill_template_is_active"`
	TotalAmount          decimal.Decimal        `json:"total_amount"`
	Items                []TemplateItemResponse `json:"items"`
	AssignedPropertyIDs  []string               `json:"assigned_property_ids"`
}

func FromModelBillTemplate(m *model.BillTemplateModel) BillTemplateResponse {
	resp := BillTemplateResponse{
		BillTemplateID:       m.BillTemplateID.String(),
		BillTemplateName:     m.BillTemplateName,
		BillTemplateDesc:     m.BillTemplateDesc,
		BillTemplateIsGlobal: m.BillTemplateIsGlobal,
		BillTemplateIsActive: m.BillTemplateIsActive,
		TotalAmount:          m.TotalAmount(),
		Items:                make([]TemplateItemResponse, 0, len(m.Items)),
		AssignedPropertyIDs:  make([]string, 0, len(m.Properties)),
	}
	if m.BillTemplatePropertyID != nil {
		s := m.BillTemplatePropertyID.String()
		resp.BillTemplatePropertyID = &s
	}
	for i := range m.Items {
		it := &m.Items[i]
		resp.Items = append(resp.Items, TemplateItemResponse{
			BillTemplateItemID: it.BillTemplateItemID.String(),
			LineNumber:         it.BillTemplateItemLineNumber,
			Description:        it.BillTemplateItemDescription,
			Quantity:           it.BillTemplateItemQuantity,
			UnitPrice:          it.BillTemplateItemUnitPrice,
			TaxRate:            it.BillTemplateItemTaxRate,
			TaxAmount:          it.TaxAmountOrDerived(),
			ItemType:           string(it.BillTemplateItemType),
		})
	}
	for i := range m.Properties {
		resp.AssignedPropertyIDs = append(resp.AssignedPropertyIDs, m.Properties[i].BillTemplatePropertyPropertyID.String())
	}
	return resp
}

func FromModelBillTemplates(ms []model.BillTemplateModel) []BillTemplateResponse {
	out := make([]BillTemplateResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelBillTemplate(&ms[i]))
	}
	return out
}
