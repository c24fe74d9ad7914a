// FILE: internal/dto/review_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ServiceRequestId uuid.UUID `json:"service_request_id" validate:"required"`
	Rating           int       `json:"rating" validate:"required,min=1,max=5"`
	Comment          string    `json:"comment"`
}

type UpdateReviewRequest struct {
	Id     uuid.UUID `json:"-"`
	Rating int       `json:"rating" validate:"required,min=1,max=5"`
	Comment string   `json:"comment"`
}

type ReviewResponse struct {
	Id               uuid.UUID `json:"id"`
	ServiceRequestId uuid.UUID `json:"service_request_id"`
	CustomerId       uuid.UUID `json:"customer_id"`
	CustomerName     string    `json:"customer_name,omitempty"`
	ProfessionalId   uuid.UUID `json:"professional_id"`
	ServiceName      string    `json:"service_name,omitempty"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
