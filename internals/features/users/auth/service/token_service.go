// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/configs"
	authModel "sukaza_backend/internals/features/users/auth/model"
	userModel "sukaza_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// ========================== ISSUE ==========================

func BuildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserFullName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
}

func BuildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func SignAccessToken(u *userModel.UserModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
}

func SignRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET not set")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, BuildRefreshClaims(userID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
}

// ========================== REFRESH STORE ==========================

// ComputeRefreshHash: refresh tokens are stored hashed so a DB leak does not
// leak usable tokens.
func ComputeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func StoreRefreshToken(db *gorm.DB, userID uuid.UUID, token, userAgent, ip string, now time.Time) error {
	rec := &authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     ComputeRefreshHash(token, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
	}
	if userAgent != "" {
		rec.UserAgent = &userAgent
	}
	if ip != "" {
		rec.IP = &ip
	}
	return db.Create(rec).Error
}

// RotateRefreshToken checks the presented token is known, deletes it, and
// returns the user id it belonged to.
func RotateRefreshToken(db *gorm.DB, presented string) (uuid.UUID, error) {
	tok, err := jwt.Parse(presented, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}

	h := ComputeRefreshHash(presented, configs.JWTRefreshSecret)
	res := db.Where("token = ?", h).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, errors.New("refresh token unknown")
	}
	return userID, nil
}

// BlacklistAccessToken records a logged-out access token until it expires.
func BlacklistAccessToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}
