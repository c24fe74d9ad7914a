// FILE: internal/dto/profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CustomerProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	Pincode   string    `json:"pincode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateCustomerProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3"`
	Address  *string `json:"address"`
	Pincode  *string `json:"pincode" validate:"omitempty,len=6"`
}

type ProfessionalProfileResponse struct {
	Id              uuid.UUID `json:"id"`
	UserId          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	ServiceId       uuid.UUID `json:"service_id"`
	ServiceName     string    `json:"service_name,omitempty"`
	Description     string    `json:"description,omitempty"`
	YearsExperience int       `json:"years_experience"`
	Verification    string    `json:"verification_status"`
	AverageRating   float64   `json:"average_rating"`
	ReviewCount     int64     `json:"review_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateProfessionalProfileRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=3"`
	Description     *string `json:"description"`
	YearsExperience *int    `json:"years_experience" validate:"omitempty,min=0,max=60"`
}
