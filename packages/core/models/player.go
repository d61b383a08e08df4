package models

import (
	"time"

	"gorm.io/gorm"
)

// Player belongs to exactly one team. Names are not unique and shots reference
// a player by display name, so deleting or renaming a player leaves historical
// shots untouched.
type Player struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	TeamID    string         `gorm:"size:36;not null;index" json:"team_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Player) TableName() string {
	return "players"
}

type AddPlayerRequest struct {
	Name string `json:"name"`
}
