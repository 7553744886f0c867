package storage

import (
	"ranking-league-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChallengeRepository is the GORM-backed challenge store. Challenges are
// only ever created and updated, never deleted.
type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) Create(challenge *models.Challenge) error {
	// Participants already exist; only the join rows are written here.
	return r.db.Omit("Requester", "Match", "Players.*").Create(challenge).Error
}

func (r *ChallengeRepository) FindByID(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.withDetails().First(&challenge, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *ChallengeRepository) ListAll() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.withDetails().Order("created_at ASC").Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *ChallengeRepository) ListByPlayer(playerID string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.withDetails().
		Joins("JOIN challenge_players cp ON cp.challenge_id = challenges.id").
		Where("cp.player_id = ?", playerID).
		Order("challenges.created_at ASC").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

// Update persists the challenge row itself; participants and the linked
// match record are never rewritten through this path.
func (r *ChallengeRepository) Update(challenge *models.Challenge) error {
	return r.db.Omit(clause.Associations).Save(challenge).Error
}

func (r *ChallengeRepository) withDetails() *gorm.DB {
	return r.db.
		Preload("Players").
		Preload("Requester").
		Preload("Match").
		Preload("Match.Players").
		Preload("Match.Winner")
}
