package models

import "time"

// Match records the outcome of a resolved challenge, naming a winner.
// Category and participants are copied from the originating challenge.
type Match struct {
	ID       string   `gorm:"primaryKey;type:uuid" json:"id"`
	Category string   `gorm:"not null" json:"category"`
	Players  []Player `json:"players,omitempty" gorm:"many2many:match_players"`

	WinnerID string `gorm:"not null" json:"winner_id"`
	Winner   Player `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`

	PlayedAt  time.Time `gorm:"not null" json:"played_at"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
