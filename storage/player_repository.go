package storage

import (
	"ranking-league-system/models"

	"gorm.io/gorm"
)

// PlayerRepository is the GORM-backed player store.
type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

func (r *PlayerRepository) FindByID(id string) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) FindByEmail(email string) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) ListAll() ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Order("created_at ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *PlayerRepository) SearchByName(folded string) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("name ILIKE ?", "%"+folded+"%").
		Order("name ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

func (r *PlayerRepository) Delete(id string) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}
