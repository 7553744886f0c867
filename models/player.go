package models

import (
	"time"

	"gorm.io/gorm"
)

// Player is a league member. Referenced by id from challenges, matches and
// category rosters; owned by the player directory.
type Player struct {
	ID              string `gorm:"primaryKey;type:uuid" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Phone           string `json:"phone,omitempty"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Ranking         string `json:"ranking,omitempty"`          // tier label within the category, e.g. "A"
	RankingPosition int    `json:"ranking_position,omitempty"` // position inside the tier
	PhotoURL        string `json:"photo_url,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
