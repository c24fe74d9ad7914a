// FILE: internal/entity/service_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog entry (a category of household work).
type Service struct {
	Id            uuid.UUID
	Name          string
	BasePrice     float64
	EstimatedTime int // minutes
	Description   string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
