package storage

import (
	"ranking-league-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository is the GORM-backed match store. Delete exists solely for
// the match recorder's compensating path and removes the row for real.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Omit("Winner", "Players.*").Create(match).Error
}

func (r *MatchRepository) Delete(id string) error {
	return r.db.Select(clause.Associations).Delete(&models.Match{ID: id}).Error
}
