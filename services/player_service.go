package services

import (
	"strings"

	"ranking-league-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/unidecode"
)

// PlayerService owns the player directory: registration, lookup, search and
// removal of league members.
type PlayerService struct {
	Players PlayerRepository
}

func NewPlayerService(players PlayerRepository) *PlayerService {
	return &PlayerService{Players: players}
}

// CreatePlayerRequest carries the inputs of CreatePlayer.
type CreatePlayerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdatePlayerRequest carries the mutable player fields.
type UpdatePlayerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreatePlayer registers a new player. Emails are unique across the league.
func (s *PlayerService) CreatePlayer(req CreatePlayerRequest) (*models.Player, error) {
	if req.Name == "" || req.Email == "" {
		return nil, NewValidationError("name and email are required")
	}

	if _, err := s.Players.FindByEmail(req.Email); err == nil {
		return nil, NewValidationError("player with email %s already registered", req.Email)
	}

	player := &models.Player{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := s.Players.Create(player); err != nil {
		return nil, NewInternalError("failed to save player", err)
	}
	return player, nil
}

// UpdatePlayer changes a player's mutable attributes.
func (s *PlayerService) UpdatePlayer(id string, req UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.FindPlayerByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		player.Name = req.Name
	}
	if req.Phone != "" {
		player.Phone = req.Phone
	}
	if err := s.Players.Update(player); err != nil {
		return nil, NewInternalError("failed to update player", err)
	}
	return player, nil
}

// SetPlayerPhoto records the uploaded avatar URL on the player.
func (s *PlayerService) SetPlayerPhoto(id, url string) (*models.Player, error) {
	player, err := s.FindPlayerByID(id)
	if err != nil {
		return nil, err
	}

	player.PhotoURL = url
	if err := s.Players.Update(player); err != nil {
		return nil, NewInternalError("failed to update player", err)
	}
	return player, nil
}

func (s *PlayerService) ListPlayers() ([]models.Player, error) {
	players, err := s.Players.ListAll()
	if err != nil {
		return nil, NewInternalError("failed to list players", err)
	}
	return players, nil
}

// SearchPlayers matches player names case-insensitively, folding accents on
// the query so "joao" finds "João".
func (s *PlayerService) SearchPlayers(query string) ([]models.Player, error) {
	folded := strings.TrimSpace(unidecode.Unidecode(query))
	if folded == "" {
		return nil, NewValidationError("search query is required")
	}
	players, err := s.Players.SearchByName(folded)
	if err != nil {
		return nil, NewInternalError("failed to search players", err)
	}
	return players, nil
}

func (s *PlayerService) FindPlayerByID(id string) (*models.Player, error) {
	player, err := s.Players.FindByID(id)
	if err != nil {
		return nil, NewNotFoundError("player %s not found", id)
	}
	return player, nil
}

func (s *PlayerService) DeletePlayer(id string) error {
	if _, err := s.FindPlayerByID(id); err != nil {
		return err
	}
	if err := s.Players.Delete(id); err != nil {
		return NewInternalError("failed to delete player", err)
	}
	return nil
}

// PlayerDirectory implementation consumed by the challenge engine.

func (s *PlayerService) FindByID(id string) (*models.Player, error) {
	return s.FindPlayerByID(id)
}

func (s *PlayerService) ListAll() ([]models.Player, error) {
	return s.ListPlayers()
}
