package models

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors the identity provider's subject: the provider-assigned id is
// the primary key, so the same person always maps to the same row.
type User struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Email     string         `json:"email" gorm:"size:255;index"`
	Name      string         `json:"name" gorm:"size:255"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
