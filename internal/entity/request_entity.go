// FILE: internal/entity/request_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusRequested RequestStatus = "requested"
	RequestStatusAssigned  RequestStatus = "assigned"
	// RequestStatusInProgress is part of the status vocabulary but no
	// transition currently produces it. Kept so stored data and clients
	// that know the full vocabulary stay compatible.
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusClosed     RequestStatus = "closed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

type ServiceRequest struct {
	Id             uuid.UUID
	ServiceId      uuid.UUID
	CustomerId     uuid.UUID
	ProfessionalId *uuid.UUID // non-nil only in assigned/completed/closed
	Status         RequestStatus
	RequestDate    time.Time
	ScheduledDate  time.Time
	CompletionDate *time.Time // set only in completed/closed
	Remarks        string
	LastUpdated    time.Time

	// Derived at read time, never stored.
	ServiceName      string
	CustomerName     string
	ProfessionalName string
}

// RejectedServiceRequest is an append-only record of a professional turning
// down a request. Unique per (service_request_id, professional_id).
type RejectedServiceRequest struct {
	Id               uuid.UUID
	ServiceRequestId uuid.UUID
	ProfessionalId   uuid.UUID
	Reason           string
	CreatedAt        time.Time

	// Derived at read time.
	ServiceName  string
	CustomerName string
}
