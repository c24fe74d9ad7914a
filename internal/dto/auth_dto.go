// FILE: internal/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3"`
	Role     string `json:"role" validate:"required,oneof=customer professional"`

	// Customer fields
	Address string `json:"address"`
	Pincode string `json:"pincode"`

	// Professional fields
	ServiceId       *uuid.UUID `json:"service_id"`
	Description     string     `json:"description"`
	YearsExperience int        `json:"years_experience" validate:"omitempty,min=0,max=60"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Active   bool      `json:"active"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
