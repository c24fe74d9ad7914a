package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ServiceRequestId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	ServiceRequest   ServiceRequest `gorm:"foreignKey:ServiceRequestId"`
	CustomerId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProfessionalId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Rating           int            `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment          string         `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
