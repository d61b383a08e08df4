package models

import (
	"time"

	"gorm.io/gorm"
)

// Team is the single team a user tracks shots for. The app loads at most one
// team per owner; the row is created lazily by the first debounced name save.
type Team struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	OwnerUserID string         `gorm:"size:36;not null;index" json:"owner_user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Players []Player `gorm:"foreignKey:TeamID" json:"players,omitempty"`
	Games   []Game   `gorm:"foreignKey:TeamID" json:"games,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type UpdateTeamRequest struct {
	Name string `json:"name"`
}
