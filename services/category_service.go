package services

import (
	"ranking-league-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryService owns the category directory: category registration, the
// member roster, and the lookup of a player's current category that the
// challenge engine consumes.
type CategoryService struct {
	Categories CategoryRepository
	Players    PlayerDirectory
}

func NewCategoryService(categories CategoryRepository, players PlayerDirectory) *CategoryService {
	return &CategoryService{Categories: categories, Players: players}
}

// CreateCategoryRequest carries the inputs of CreateCategory.
type CreateCategoryRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Events      []CategoryEventRequest `json:"events"`
}

// UpdateCategoryRequest carries the mutable category fields.
type UpdateCategoryRequest struct {
	Description string                 `json:"description"`
	Events      []CategoryEventRequest `json:"events"`
}

// CategoryEventRequest is one scoring rule in a create/update request.
type CategoryEventRequest struct {
	Name      string `json:"name"`
	Operation string `json:"operation"`
	Value     int    `json:"value"`
}

var titleCaser = cases.Title(language.Und)

// CreateCategory registers a new category. Labels are unique; the slug and
// display name are derived from the label once at creation.
func (s *CategoryService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, NewValidationError("category name is required")
	}

	if _, err := s.Categories.FindByName(req.Name); err == nil {
		return nil, NewValidationError("category %s already registered", req.Name)
	}

	category := &models.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		DisplayName: titleCaser.String(req.Name),
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Events:      buildEvents(req.Events),
	}
	for i := range category.Events {
		category.Events[i].CategoryID = category.ID
	}
	if err := s.Categories.Create(category); err != nil {
		return nil, NewInternalError("failed to save category", err)
	}
	return category, nil
}

func buildEvents(reqs []CategoryEventRequest) []models.CategoryEvent {
	events := make([]models.CategoryEvent, 0, len(reqs))
	for i, e := range reqs {
		events = append(events, models.CategoryEvent{
			ID:        uuid.NewString(),
			Name:      e.Name,
			Operation: e.Operation,
			Value:     e.Value,
			SortOrder: i,
		})
	}
	return events
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.Categories.ListAll()
	if err != nil {
		return nil, NewInternalError("failed to list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) FindCategoryByName(name string) (*models.Category, error) {
	category, err := s.Categories.FindByName(name)
	if err != nil {
		return nil, NewNotFoundError("category %s not found", name)
	}
	return category, nil
}

// UpdateCategory replaces the description and scoring events of a category.
// The label, slug and roster are not touched here.
func (s *CategoryService) UpdateCategory(name string, req UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.FindCategoryByName(name)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Events != nil {
		category.Events = buildEvents(req.Events)
		for i := range category.Events {
			category.Events[i].CategoryID = category.ID
		}
	}
	if err := s.Categories.Update(category); err != nil {
		return nil, NewInternalError("failed to update category", err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(name string) error {
	category, err := s.FindCategoryByName(name)
	if err != nil {
		return err
	}
	if err := s.Categories.Delete(category.ID); err != nil {
		return NewInternalError("failed to delete category", err)
	}
	return nil
}

// AssignPlayerToCategory adds a player to a category roster. A player
// belongs to at most one category, so the assignment is rejected while any
// membership exists, including in the same category.
func (s *CategoryService) AssignPlayerToCategory(name, playerID string) (*models.Category, error) {
	category, err := s.FindCategoryByName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.Players.FindByID(playerID); err != nil {
		return nil, NewNotFoundError("player %s not found", playerID)
	}

	if existing, err := s.Categories.FindByPlayer(playerID); err == nil {
		return nil, NewValidationError("player already assigned to category %s", existing.Name)
	}

	if err := s.Categories.AddMember(category.ID, playerID); err != nil {
		return nil, NewInternalError("failed to add player to category", err)
	}
	return s.FindCategoryByName(name)
}

// FindCategoryOfPlayer implements CategoryDirectory for the challenge
// engine: the category whose roster contains the player.
func (s *CategoryService) FindCategoryOfPlayer(playerID string) (*models.Category, error) {
	category, err := s.Categories.FindByPlayer(playerID)
	if err != nil {
		return nil, NewNotFoundError("player %s does not belong to any category", playerID)
	}
	return category, nil
}
