// FILE: internal/entity/review_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a closed service request. At most one
// review exists per request.
type Review struct {
	Id               uuid.UUID
	ServiceRequestId uuid.UUID
	CustomerId       uuid.UUID
	ProfessionalId   uuid.UUID
	Rating           int // 1..5
	Comment          string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Derived at read time.
	CustomerName string
	ServiceName  string
}
