package model

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	BasePrice     float64   `gorm:"not null"`
	EstimatedTime int       `gorm:"not null"` // minutes
	Description   string    `gorm:"type:text"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Service) TableName() string {
	return "services"
}
