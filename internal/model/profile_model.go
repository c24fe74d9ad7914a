package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	User      User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Address   string    `gorm:"type:text"`
	Pincode   string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

type Professional struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	User            User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	ServiceId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Service         Service   `gorm:"foreignKey:ServiceId"`
	Description     string    `gorm:"type:text"`
	YearsExperience int       `gorm:"not null;default:0"`
	Verification    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Professional) TableName() string {
	return "professionals"
}
