package models

import (
	"time"

	"gorm.io/gorm"
)

type ShotType string

type ShotResult string

const (
	ShotTypeTriple ShotType = "triple"
	ShotTypeDoble  ShotType = "doble"
	ShotTypeLibre  ShotType = "libre"

	ShotResultConvertido ShotResult = "convertido"
	ShotResultFallado    ShotResult = "fallado"
)

// ShotTypes is the fixed order every per-type breakdown is reported in.
var ShotTypes = []ShotType{ShotTypeTriple, ShotTypeDoble, ShotTypeLibre}

// PointsForType maps each shot type to its point value. The make/attempt
// aggregates do not consume it; the points totals and fixtures do.
var PointsForType = map[ShotType]int{
	ShotTypeTriple: 3,
	ShotTypeDoble:  2,
	ShotTypeLibre:  1,
}

func (t ShotType) Valid() bool {
	return t == ShotTypeTriple || t == ShotTypeDoble || t == ShotTypeLibre
}

func (r ShotResult) Valid() bool {
	return r == ShotResultConvertido || r == ShotResultFallado
}

// Shot is one recorded attempt. It stores the attributing player's display
// name rather than a player id: renaming or deleting a player does not update
// or invalidate prior shots. Shots are immutable and append-only.
type Shot struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Type       ShotType       `gorm:"size:16;not null" json:"type"`
	Result     ShotResult     `gorm:"size:16;not null" json:"result"`
	PlayerName string         `gorm:"size:255;not null" json:"player_name"`
	GameID     string         `gorm:"size:36;not null;index" json:"game_id"`
	Timestamp  int64          `gorm:"not null" json:"timestamp"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Shot) TableName() string {
	return "shots"
}
