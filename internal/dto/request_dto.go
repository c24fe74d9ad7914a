// FILE: internal/dto/request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateServiceRequestRequest struct {
	ServiceId     uuid.UUID `json:"service_id" validate:"required"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	Remarks       string    `json:"remarks"`
}

type UpdateServiceRequestRequest struct {
	Id            uuid.UUID  `json:"-"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Remarks       *string    `json:"remarks"`
}

type RejectServiceRequestRequest struct {
	Reason string `json:"reason"`
}

type ServiceRequestResponse struct {
	Id               uuid.UUID  `json:"id"`
	ServiceId        uuid.UUID  `json:"service_id"`
	ServiceName      string     `json:"service_name,omitempty"`
	CustomerId       uuid.UUID  `json:"customer_id"`
	CustomerName     string     `json:"customer_name,omitempty"`
	ProfessionalId   *uuid.UUID `json:"professional_id,omitempty"`
	ProfessionalName string     `json:"professional_name,omitempty"`
	Status           string     `json:"status"`
	RequestDate      time.Time  `json:"request_date"`
	ScheduledDate    time.Time  `json:"scheduled_date"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	Remarks          string     `json:"remarks,omitempty"`
	LastUpdated      time.Time  `json:"last_updated"`
}

type RejectionResponse struct {
	Id               uuid.UUID `json:"id"`
	ServiceRequestId uuid.UUID `json:"service_request_id"`
	ProfessionalId   uuid.UUID `json:"professional_id"`
	Reason           string    `json:"reason,omitempty"`
	ServiceName      string    `json:"service_name,omitempty"`
	CustomerName     string    `json:"customer_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	OwnRejection     bool      `json:"own_rejection,omitempty"`
}

// RejectionFilter narrows rejection listings. Zero values mean "no filter".
type RejectionFilter struct {
	ServiceRequestId *uuid.UUID
	ProfessionalId   *uuid.UUID
	Limit            int
	Offset           int
}

// AdminRequestFilter collects the admin listing filters. Zero values mean
// "no filter".
type AdminRequestFilter struct {
	ServiceId      *uuid.UUID
	CustomerId     *uuid.UUID
	ProfessionalId *uuid.UUID
	Status         string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}
