package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCustomer struct {
	CustomerID uuid.UUID
}

func (s ByCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

type ByProfessional struct {
	ProfessionalID uuid.UUID
}

func (s ByProfessional) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("professional_id = ?", s.ProfessionalID)
}

type ByService struct {
	ServiceID uuid.UUID
}

func (s ByService) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_id = ?", s.ServiceID)
}

type Unassigned struct{}

func (s Unassigned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("professional_id IS NULL")
}

type ScheduledBefore struct {
	Cutoff time.Time
}

func (s ScheduledBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scheduled_date < ?", s.Cutoff)
}

type ScheduledBetween struct {
	From time.Time
	To   time.Time
}

func (s ScheduledBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scheduled_date >= ? AND scheduled_date < ?", s.From, s.To)
}

type RequestedBetween struct {
	From time.Time
	To   time.Time
}

func (s RequestedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("request_date >= ? AND request_date < ?", s.From, s.To)
}

// NotRejectedBy excludes requests the given professional already rejected.
type NotRejectedBy struct {
	ProfessionalID uuid.UUID
}

func (s NotRejectedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"id NOT IN (SELECT service_request_id FROM rejected_service_requests WHERE professional_id = ?)",
		s.ProfessionalID,
	)
}

type ByServiceRequest struct {
	ServiceRequestID uuid.UUID
}

func (s ByServiceRequest) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_request_id = ?", s.ServiceRequestID)
}
