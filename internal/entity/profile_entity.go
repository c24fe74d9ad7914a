// FILE: internal/entity/profile_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Customer is the customer-side profile attached to a user account.
type Customer struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Address   string
	Pincode   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived at read time from the users table, never stored.
	FullName string
	Email    string
}

// Professional is the provider-side profile. A professional serves exactly
// one service category and must be approved before accepting requests.
type Professional struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	ServiceId       uuid.UUID
	Description     string
	YearsExperience int
	Verification    VerificationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Derived at read time, never stored.
	FullName    string
	Email       string
	ServiceName string
}
