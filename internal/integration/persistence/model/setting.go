// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel represents the settings table holding per-user key/value
// configuration.
type SettingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
