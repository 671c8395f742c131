// file: internals/features/access/keys/service/key_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "sukaza_backend/internals/features/access/keys/model"
)

var (
	ErrKeyGone         = errors.New("key not found")
	ErrNoneAvailable   = errors.New("no keys available to check out")
	ErrAllAccountedFor = errors.New("all keys are already checked in")
)

// ApplyTransfer adjusts the available count for a direction without letting
// it leave the [0, total] range.
func ApplyTransfer(available, total int, direction model.TransferDirection) (int, error) {
	switch direction {
	case model.TransferCheckout:
		if available <= 0 {
			return available, ErrNoneAvailable
		}
		return available - 1, nil
	case model.TransferCheckin:
		if available >= total {
			return available, ErrAllAccountedFor
		}
		return available + 1, nil
	default:
		return available, errors.New("unknown transfer direction")
	}
}

// RecordTransfer writes the transfer row and the updated availability in one
// transaction. The key row is locked for the update so two concurrent
// checkouts cannot both take the last key.
func RecordTransfer(db *gorm.DB, keyID uuid.UUID, holderName string, direction model.TransferDirection) (*model.KeyModel, error) {
	var key model.KeyModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&key, "key_id = ?", keyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrKeyGone
			}
			return err
		}

		next, err := ApplyTransfer(key.KeyAvailableCount, key.KeyTotalCount, direction)
		if err != nil {
			return err
		}
		key.KeyAvailableCount = next

		if err := tx.Model(&model.KeyModel{}).
			Where("key_id = ?", key.KeyID).
			Update("key_available_count", next).Error; err != nil {
			return err
		}

		return tx.Create(&model.KeyTransferModel{
			KeyTransferKeyID:      key.KeyID,
			KeyTransferHolderName: holderName,
			KeyTransferDirection:  direction,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &key, nil
}
