// file: internals/features/vault/entry/controller/vault_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/vault/entry/dto"
	model "sukaza_backend/internals/features/vault/entry/model"
	service "sukaza_backend/internals/features/vault/entry/service"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
)

const masterPasswordHeader = "X-Master-Password"

type VaultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVaultController(db *gorm.DB) *VaultController {
	return &VaultController{DB: db, Validator: validator.New()}
}

// masterPassword pulls the header and checks it against the stored bcrypt
// verifier. Any mismatch, including a vault that was never initialized,
// comes back as a 403.
func (ctrl *VaultController) masterPassword(c *fiber.Ctx) (string, error) {
	pw := strings.TrimSpace(c.Get(masterPasswordHeader))
	if pw == "" {
		return "", helper.Error(c, fiber.StatusForbidden, "Master password is required")
	}

	var settings model.VaultSettingsModel
	if err := ctrl.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", helper.Error(c, fiber.StatusForbidden, "Vault master password has not been set")
		}
		return "", helper.Error(c, fiber.StatusInternalServerError, "Failed to load vault settings")
	}

	if bcrypt.CompareHashAndPassword([]byte(settings.VaultSettingsVerifierHash), []byte(pw)) != nil {
		return "", helper.Error(c, fiber.StatusForbidden, "Master password is incorrect")
	}
	return pw, nil
}

// =====================================================
// PUT /api/vault/master-password
// First call initializes the verifier; later calls rotate
// it and require the current password. Rotation does NOT
// re-encrypt existing entries; their secrets still need
// the password they were sealed under.
// =====================================================
func (ctrl *VaultController) SetMasterPassword(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermUseVault); err != nil {
		return err
	}

	var req dto.SetMasterPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash master password")
	}

	var settings model.VaultSettingsModel
	err = ctrl.DB.First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings.VaultSettingsVerifierHash = string(hash)
		if err := ctrl.DB.Create(&settings).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to save vault settings")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load vault settings")
	default:
		if bcrypt.CompareHashAndPassword([]byte(settings.VaultSettingsVerifierHash), []byte(req.CurrentPassword)) != nil {
			return helper.Error(c, fiber.StatusForbidden, "Current master password is incorrect")
		}
		settings.VaultSettingsVerifierHash = string(hash)
		if err := ctrl.DB.Save(&settings).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to save vault settings")
		}
	}

	log.Printf("[VAULT] master password verifier updated")
	return helper.Success(c, "Master password set successfully", nil)
}

// =====================================================
// GET /api/vault/entries — metadata only, no secrets
// =====================================================
func (ctrl *VaultController) List(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermUseVault); err != nil {
		return err
	}

	p := helper.ParseFiber(c, "label", "asc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.VaultEntryModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("vault_entry_property_id = ?", pid)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("vault_entry_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count vault entries")
	}

	var entries []model.VaultEntryModel
	if err := q.
		Order("vault_entry_label ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch vault entries")
	}

	return helper.Success(c, "Vault entries fetched successfully", fiber.Map{
		"items": dto.FromModelVaultEntries(entries),
		"meta":  helper.BuildMeta(total, p),
	})
}

// =====================================================
// POST /api/vault/entries — requires the master password
// to seal the secret
// =====================================================
func (ctrl *VaultController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermUseVault); err != nil {
		return err
	}

	pw, pwErr := ctrl.masterPassword(c)
	if pwErr != nil {
		return pwErr
	}

	var req dto.CreateVaultEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := req.ToModel()
	ciphertext, nonce, salt, err := service.EncryptSecret(pw, req.Secret)
	if err != nil {
		log.Printf("[VAULT] encrypt failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encrypt secret")
	}
	entry.VaultEntryCiphertext = ciphertext
	entry.VaultEntryNonce = nonce
	entry.VaultEntrySalt = salt

	if err := ctrl.DB.Create(entry).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save vault entry")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Vault entry created successfully", dto.FromModelVaultEntry(entry))
}

// =====================================================
// POST /api/vault/entries/:id/reveal
// Wrong master password is a 403, never a decrypt panic.
// =====================================================
func (ctrl *VaultController) Reveal(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermUseVault); err != nil {
		return err
	}

	pw, pwErr := ctrl.masterPassword(c)
	if pwErr != nil {
		return pwErr
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	var entry model.VaultEntryModel
	if err := ctrl.DB.First(&entry, "vault_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vault entry not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch vault entry")
	}

	secret, err := service.DecryptSecret(pw, entry.VaultEntryCiphertext, entry.VaultEntryNonce, entry.VaultEntrySalt)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			// Verifier passed but this entry was sealed under an older
			// master password.
			return helper.Error(c, fiber.StatusForbidden, "Entry was sealed under a different master password")
		}
		log.Printf("[VAULT] decrypt failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decrypt secret")
	}

	return helper.Success(c, "Secret revealed successfully", dto.RevealResponse{
		VaultEntryID: entry.VaultEntryID.String(),
		Label:        entry.VaultEntryLabel,
		Username:     entry.VaultEntryUsername,
		Secret:       secret,
	})
}

// =====================================================
// DELETE /api/vault/entries/:id
// =====================================================
func (ctrl *VaultController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermUseVault); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	res := ctrl.DB.Delete(&model.VaultEntryModel{}, "vault_entry_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete vault entry")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Vault entry not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
