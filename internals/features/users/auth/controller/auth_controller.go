// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sukaza_backend/internals/configs"
	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/users/auth/dto"
	service "sukaza_backend/internals/features/users/auth/service"
	userModel "sukaza_backend/internals/features/users/user/model"
	helper "sukaza_backend/internals/helpers"
	helperAuth "sukaza_backend/internals/helpers/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Login ==========
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.
		First(&user, "lower(user_email) = lower(?)", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !service.ComparePassword(user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctl.issueTokens(c, &user)
}

// ========== Google login ==========
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google token invalid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google token invalid")
	}

	// accounts are provisioned by an admin first; Google login only links
	var user userModel.UserModel
	if err := ctl.DB.
		First(&user, "lower(user_email) = lower(?)", claimSet.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "No account for this Google email")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if user.UserGoogleID == nil || *user.UserGoogleID != claimSet.Sub {
		sub := claimSet.Sub
		user.UserGoogleID = &sub
		if err := ctl.DB.Save(&user).Error; err != nil {
			log.Printf("[AUTH] google id link failed: %v", err)
		}
	}

	return ctl.issueTokens(c, &user)
}

// ========== Refresh ==========
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	presented := strings.TrimSpace(c.Cookies("refresh_token"))
	if presented == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			presented = strings.TrimSpace(body.RefreshToken)
		}
	}
	if presented == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	userID, err := service.RotateRefreshToken(ctl.DB, presented)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return ctl.issueTokens(c, &user)
}

// ========== Logout ==========
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		token := strings.Trim(fields[1], "\"'")
		// best-effort exp extraction for the blacklist TTL
		expiredAt := time.Now().Add(24 * time.Hour)
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		if err := service.BlacklistAccessToken(ctl.DB, token, expiredAt); err != nil {
			log.Printf("[AUTH] blacklist insert failed: %v", err)
		}
	}

	c.ClearCookie("refresh_token")
	return helper.Success(c, "Logged out", nil)
}

// ========== Me ==========
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{
		"user":        dto.FromModelUser(&user),
		"permissions": constants.RolePermissions[user.UserRole],
	})
}

func (ctl *AuthController) issueTokens(c *fiber.Ctx, user *userModel.UserModel) error {
	now := time.Now().UTC()

	access, err := service.SignAccessToken(user, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refresh, err := service.SignRefreshToken(user.UserID, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}
	if err := service.StoreRefreshToken(ctl.DB, user.UserID, refresh, c.Get("User-Agent"), c.IP(), now); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  now.Add(7 * 24 * time.Hour),
	})

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromModelUser(user),
	})
}
