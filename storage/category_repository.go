package storage

import (
	"ranking-league-system/models"

	"gorm.io/gorm"
)

// CategoryRepository is the GORM-backed category store, including the
// category_players roster table.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Omit("Players.*").Create(category).Error
}

func (r *CategoryRepository) FindByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"sort_order\" ASC")
		}).
		Preload("Players").
		First(&category, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByPlayer(playerID string) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Joins("JOIN category_players cp ON cp.category_id = categories.id").
		Where("cp.player_id = ?", playerID).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"sort_order\" ASC")
		}).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"sort_order\" ASC")
		}).
		Preload("Players").
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update rewrites the category row and replaces its scoring events.
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.CategoryEvent{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).
			Omit("Players").
			Save(category).Error
	})
}

func (r *CategoryRepository) Delete(id string) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}

func (r *CategoryRepository) AddMember(categoryID, playerID string) error {
	return r.db.Exec(
		"INSERT INTO category_players (category_id, player_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		categoryID, playerID,
	).Error
}
