// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	userModel "sukaza_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email"`
	UserFullName string `json:"user_full_name"`
	UserRole     string `json:"user_role"`
	UserIsActive bool   `json:"user_is_active"`
}

func FromModelUser(u *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID.String(),
		UserEmail:    u.UserEmail,
		UserFullName: u.UserFullName,
		UserRole:     u.UserRole,
		UserIsActive: u.UserIsActive,
	}
}
