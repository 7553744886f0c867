package services

import "ranking-league-system/models"

// Interfaces the services consume. GORM-backed implementations live in the
// storage package; tests substitute in-memory fakes.

// PlayerDirectory resolves league members.
type PlayerDirectory interface {
	FindByID(id string) (*models.Player, error)
	ListAll() ([]models.Player, error)
}

// CategoryDirectory resolves categories and their rosters.
type CategoryDirectory interface {
	FindCategoryOfPlayer(playerID string) (*models.Category, error)
}

// ChallengeRepository owns challenge persistence.
type ChallengeRepository interface {
	Create(challenge *models.Challenge) error
	FindByID(id string) (*models.Challenge, error)
	ListAll() ([]models.Challenge, error)
	ListByPlayer(playerID string) ([]models.Challenge, error)
	Update(challenge *models.Challenge) error
}

// MatchRepository owns match persistence.
type MatchRepository interface {
	Create(match *models.Match) error
	Delete(id string) error
}

// PlayerRepository owns player persistence.
type PlayerRepository interface {
	Create(player *models.Player) error
	FindByID(id string) (*models.Player, error)
	FindByEmail(email string) (*models.Player, error)
	ListAll() ([]models.Player, error)
	SearchByName(folded string) ([]models.Player, error)
	Update(player *models.Player) error
	Delete(id string) error
}

// CategoryRepository owns category persistence and roster membership.
type CategoryRepository interface {
	Create(category *models.Category) error
	FindByName(name string) (*models.Category, error)
	FindByPlayer(playerID string) (*models.Category, error)
	ListAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id string) error
	AddMember(categoryID, playerID string) error
}
