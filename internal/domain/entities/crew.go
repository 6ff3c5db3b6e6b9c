package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CrewType distinguishes general tree care crews from plant health care
// crews.

type CrewType string

const (
	CrewTypeGTC CrewType = "GTC"
	CrewTypePHC CrewType = "PHC"
)

func ValidCrewType(t CrewType) bool {
	return t == CrewTypeGTC || t == CrewTypePHC
}

// Crew is a named work team assignable to jobs.
type Crew struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"size:200;not null" json:"name"`
	Type      CrewType     `gorm:"size:20;not null;default:GTC" json:"type"`
	Color     *string      `gorm:"size:50" json:"color"`
	Notes     string       `gorm:"type:text" json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Members []CrewMember `gorm:"foreignKey:CrewID" json:"members"`
}

func (Crew) TableName() string { return "crews" }

// CrewMember pairs a crew with a user id, unique per pair. User accounts
// themselves are managed elsewhere; only the id is referenced here.
type CrewMember struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	CrewID    snowflake.ID `gorm:"not null;uniqueIndex:uq_crew_member" json:"crew_id"`
	UserID    int64        `gorm:"not null;uniqueIndex:uq_crew_member" json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
}

func (CrewMember) TableName() string { return "crew_members" }
