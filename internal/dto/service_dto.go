// FILE: internal/dto/service_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	BasePrice     float64 `json:"base_price" validate:"required,gt=0"`
	EstimatedTime int     `json:"estimated_time" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

type UpdateServiceRequest struct {
	Id            uuid.UUID `json:"-"`
	Name          *string   `json:"name" validate:"omitempty,min=2,max=100"`
	BasePrice     *float64  `json:"base_price" validate:"omitempty,gt=0"`
	EstimatedTime *int      `json:"estimated_time" validate:"omitempty,gt=0"`
	Description   *string   `json:"description"`
	IsActive      *bool     `json:"is_active"`
}

type ServiceResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	BasePrice     float64   `json:"base_price"`
	EstimatedTime int       `json:"estimated_time"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
