package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// EquipmentStatus canonical values. Seed data may carry free-form strings;
// these are the values validated on writes.

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusInUse       EquipmentStatus = "in_use"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

func ValidEquipmentStatus(s EquipmentStatus) bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusInUse, EquipmentStatusMaintenance:
		return true
	}
	return false
}

type Equipment struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:200;not null" json:"name"`
	Type      string          `gorm:"size:100;default:''" json:"type"`
	Status    EquipmentStatus `gorm:"size:50;not null;default:available" json:"status"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }
