package models

import (
	"time"

	"gorm.io/gorm"
)

// Game accumulates shots in insertion order. Date is a display-formatted
// calendar string assigned at creation, not a sortable timestamp; games are
// never edited or deleted once created.
type Game struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Date      string         `gorm:"size:32;not null" json:"date"`
	TeamID    string         `gorm:"size:36;not null;index" json:"team_id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shots []Shot `gorm:"foreignKey:GameID" json:"shots"`
}

func (Game) TableName() string {
	return "games"
}

type CreateGameRequest struct {
	Name string `json:"name"`
}
