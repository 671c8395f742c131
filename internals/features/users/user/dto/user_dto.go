// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	model "sukaza_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateUserRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserFullName string `json:"user_full_name" validate:"required,max=100"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin manager staff"`
}

func (r *CreateUserRequest) ToModel(passwordHash string) *model.UserModel {
	return &model.UserModel{
		UserEmail:    strings.ToLower(strings.TrimSpace(r.UserEmail)),
		UserFullName: strings.TrimSpace(r.UserFullName),
		UserPassword: passwordHash,
		UserRole:     r.UserRole,
		UserIsActive: true,
	}
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type PatchUserRequest struct {
	UserFullName *string `json:"user_full_name" validate:"omitempty,max=100"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=admin manager staff"`
	UserIsActive *bool   `json:"user_is_active"`
}

func (r *PatchUserRequest) ApplyTo(m *model.UserModel) {
	if r.UserFullName != nil {
		m.UserFullName = strings.TrimSpace(*r.UserFullName)
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email"`
	UserFullName string `json:"user_full_name"`
	UserRole     string `json:"user_role"`
	UserIsActive bool   `json:"user_is_active"`
}

func FromModelUser(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID.String(),
		UserEmail:    m.UserEmail,
		UserFullName: m.UserFullName,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
	}
}

func FromModelUsers(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelUser(&ms[i]))
	}
	return out
}
