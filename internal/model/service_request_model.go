package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	Id             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ServiceId      uuid.UUID    `gorm:"type:uuid;not null;index"`
	Service        Service      `gorm:"foreignKey:ServiceId"`
	CustomerId     uuid.UUID    `gorm:"type:uuid;not null;index"`
	Customer       Customer     `gorm:"foreignKey:CustomerId"`
	ProfessionalId *uuid.UUID   `gorm:"type:uuid;index"`
	Professional   Professional `gorm:"foreignKey:ProfessionalId"`
	Status         string       `gorm:"type:varchar(20);not null;index"`
	RequestDate    time.Time    `gorm:"not null"`
	ScheduledDate  time.Time    `gorm:"not null;index"`
	CompletionDate *time.Time
	Remarks        string    `gorm:"type:text"`
	LastUpdated    time.Time `gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

type RejectedServiceRequest struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ServiceRequestId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_rejection_request_professional"`
	ServiceRequest   ServiceRequest `gorm:"foreignKey:ServiceRequestId"`
	ProfessionalId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_rejection_request_professional;index"`
	Professional     Professional   `gorm:"foreignKey:ProfessionalId"`
	Reason           string         `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
}

func (RejectedServiceRequest) TableName() string {
	return "rejected_service_requests"
}
