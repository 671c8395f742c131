// file: internals/features/finance/bill_templates/service/template_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sukaza_backend/internals/features/finance/bill_templates/model"
)

var (
	ErrNameEmpty    = errors.New("new template name must not be empty")
	ErrNameSame     = errors.New("new template name must differ from the source name")
	ErrNameTaken    = errors.New("a template with this name already exists")
	ErrTemplateGone = errors.New("template not found")
)

// =========================================================
// Pure validation / set-diff logic
// =========================================================

// ValidateDuplicateName enforces the duplication rules before any write:
// non-empty, case-sensitive different from the source, and case-insensitive
// unused across all templates.
func ValidateDuplicateName(newName, sourceName string, existingNames []string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return ErrNameEmpty
	}
	if trimmed == sourceName {
		return ErrNameSame
	}
	lower := strings.ToLower(trimmed)
	for _, n := range existingNames {
		if strings.ToLower(n) == lower {
			return ErrNameTaken
		}
	}
	return nil
}

// DiffAssignments computes toAssign = target − current and
// toUnassign = current − target. Ids present on both sides are untouched.
func DiffAssignments(current, target []uuid.UUID) (toAssign, toUnassign []uuid.UUID) {
	curSet := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		curSet[id] = struct{}{}
	}
	tgtSet := make(map[uuid.UUID]struct{}, len(target))
	for _, id := range target {
		tgtSet[id] = struct{}{}
	}

	for _, id := range target {
		if _, ok := curSet[id]; !ok {
			toAssign = append(toAssign, id)
		}
	}
	for _, id := range current {
		if _, ok := tgtSet[id]; !ok {
			toUnassign = append(toUnassign, id)
		}
	}
	return toAssign, toUnassign
}

// CopyItems deep-copies template items with fresh ids and a fresh contiguous
// 1-based line numbering, preserving the source order.
func CopyItems(src []model.BillTemplateItemModel, dstTemplateID uuid.UUID) []model.BillTemplateItemModel {
	out := make([]model.BillTemplateItemModel, 0, len(src))
	for i := range src {
		it := src[i]
		copied := model.BillTemplateItemModel{
			BillTemplateItemTemplateID:  dstTemplateID,
			BillTemplateItemLineNumber:  len(out) + 1,
			BillTemplateItemDescription: it.BillTemplateItemDescription,
			BillTemplateItemQuantity:    it.BillTemplateItemQuantity,
			BillTemplateItemUnitPrice:   it.BillTemplateItemUnitPrice,
			BillTemplateItemTaxRate:     it.BillTemplateItemTaxRate,
			BillTemplateItemType:        it.BillTemplateItemType,
		}
		if it.BillTemplateItemTaxAmount != nil {
			v := *it.BillTemplateItemTaxAmount
			copied.BillTemplateItemTaxAmount = &v
		}
		out = append(out, copied)
	}
	return out
}

// =========================================================
// DB operations
// =========================================================

// DuplicateTemplate copies the source template's items under a new name.
// The copy is always created global, with no property assignments.
// All validation happens before the transaction opens.
func DuplicateTemplate(db *gorm.DB, sourceID uuid.UUID, newName string) (*model.BillTemplateModel, error) {
	var src model.BillTemplateModel
	if err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("bill_template_item_line_number ASC")
	}).First(&src, "bill_template_id = ?", sourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateGone
		}
		return nil, err
	}

	var names []string
	if err := db.Model(&model.BillTemplateModel{}).
		Pluck("bill_template_name", &names).Error; err != nil {
		return nil, err
	}
	if err := ValidateDuplicateName(newName, src.BillTemplateName, names); err != nil {
		return nil, err
	}

	dst := &model.BillTemplateModel{
		BillTemplateName:     strings.TrimSpace(newName),
		BillTemplateDesc:     src.BillTemplateDesc,
		BillTemplateIsGlobal: true, // duplicates are always global
		BillTemplateIsActive: src.BillTemplateIsActive,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dst).Error; err != nil {
			return err
		}
		items := CopyItems(src.Items, dst.BillTemplateID)
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		dst.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// ReconcileProperties brings a template's assigned-property set to target.
// Inserts and deletes run in one transaction so a partial write cannot leave
// the set in between states.
func ReconcileProperties(db *gorm.DB, templateID uuid.UUID, target []uuid.UUID) (assigned, unassigned []uuid.UUID, err error) {
	var tpl model.BillTemplateModel
	if err := db.First(&tpl, "bill_template_id = ?", templateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTemplateGone
		}
		return nil, nil, err
	}

	var current []uuid.UUID
	if err := db.Model(&model.BillTemplatePropertyModel{}).
		Where("bill_template_property_template_id = ?", templateID).
		Pluck("bill_template_property_property_id", &current).Error; err != nil {
		return nil, nil, err
	}

	toAssign, toUnassign := DiffAssignments(current, target)
	if len(toAssign) == 0 && len(toUnassign) == 0 {
		return nil, nil, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(toUnassign) > 0 {
			if err := tx.
				Where("bill_template_property_template_id = ? AND bill_template_property_property_id IN ?", templateID, toUnassign).
				Delete(&model.BillTemplatePropertyModel{}).Error; err != nil {
				return err
			}
		}
		if len(toAssign) > 0 {
			rows := make([]model.BillTemplatePropertyModel, 0, len(toAssign))
			for _, pid := range toAssign {
				rows = append(rows, model.BillTemplatePropertyModel{
					BillTemplatePropertyTemplateID: templateID,
					BillTemplatePropertyPropertyID: pid,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return toAssign, toUnassign, nil
}
