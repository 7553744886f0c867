package models

import (
	"time"
)

// ChallengeStatus tracks a challenge through its lifecycle.
type ChallengeStatus string

const (
	ChallengePending  ChallengeStatus = "PENDING"
	ChallengeAccepted ChallengeStatus = "ACCEPTED"
	ChallengeDenied   ChallengeStatus = "DENIED"
	ChallengeCanceled ChallengeStatus = "CANCELED"
	ChallengeResolved ChallengeStatus = "RESOLVED"
)

// KnownChallengeStatus reports whether s is one of the lifecycle states.
func KnownChallengeStatus(s ChallengeStatus) bool {
	switch s {
	case ChallengePending, ChallengeAccepted, ChallengeDenied, ChallengeCanceled, ChallengeResolved:
		return true
	}
	return false
}

// Challenge is a request by one player to play a ranked match against one or
// two opponents. Challenges are never deleted; cancellation is a status
// transition.
type Challenge struct {
	ID            string          `gorm:"primaryKey;type:uuid" json:"id"`
	ChallengeTime time.Time       `gorm:"not null" json:"challenge_time"` // requested date/time of play
	Status        ChallengeStatus `gorm:"type:varchar(16);default:'PENDING'" json:"status"`
	RequestedAt   time.Time       `gorm:"not null" json:"requested_at"`
	RespondedAt   *time.Time      `json:"responded_at,omitempty"` // refreshed on every status update

	// Label of the requester's category at creation time. Immutable snapshot;
	// later roster moves must not alter it.
	Category string `gorm:"not null" json:"category"`

	RequesterID string `gorm:"not null;index" json:"requester_id"`
	Requester   Player `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`

	// Participants, 1 or 2, requester always among them
	Players []Player `json:"players,omitempty" gorm:"many2many:challenge_players"`

	MatchID *string `gorm:"index" json:"match_id,omitempty"`
	Match   *Match  `json:"match,omitempty" gorm:"foreignKey:MatchID"`

	Timestamps
}

// HasParticipant reports whether playerID is one of the challenge's players.
func (c *Challenge) HasParticipant(playerID string) bool {
	for _, p := range c.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
