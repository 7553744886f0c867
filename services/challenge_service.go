package services

import (
	"time"

	"ranking-league-system/models"

	"github.com/google/uuid"
)

// ChallengeService manages the challenge lifecycle: creation, listing,
// status updates and cancellation. It validates participants against the
// player directory and snapshots the requester's category at creation.
type ChallengeService struct {
	Challenges ChallengeRepository
	Players    PlayerDirectory
	Categories CategoryDirectory

	now func() time.Time
}

func NewChallengeService(challenges ChallengeRepository, players PlayerDirectory, categories CategoryDirectory) *ChallengeService {
	return &ChallengeService{
		Challenges: challenges,
		Players:    players,
		Categories: categories,
		now:        time.Now,
	}
}

// CreateChallengeRequest carries the inputs of CreateChallenge.
type CreateChallengeRequest struct {
	ChallengeTime time.Time `json:"challenge_time"`
	RequesterID   string    `json:"requester_id"`
	PlayerIDs     []string  `json:"player_ids"`
}

// UpdateChallengeRequest carries the optional fields of UpdateChallenge.
// A zero ChallengeTime or empty Status leaves that field untouched.
type UpdateChallengeRequest struct {
	ChallengeTime *time.Time             `json:"challenge_time,omitempty"`
	Status        models.ChallengeStatus `json:"status,omitempty"`
}

// CreateChallenge validates participants and the requester's category
// membership, then persists a new PENDING challenge whose category is a
// snapshot of the requester's category label.
func (s *ChallengeService) CreateChallenge(req CreateChallengeRequest) (*models.Challenge, error) {
	if n := len(req.PlayerIDs); n < 1 || n > 2 {
		return nil, NewValidationError("a challenge takes 1 or 2 players, got %d", n)
	}

	players := make([]models.Player, 0, len(req.PlayerIDs))
	for _, id := range req.PlayerIDs {
		player, err := s.Players.FindByID(id)
		if err != nil {
			return nil, NewValidationError("the id %s is not a player", id)
		}
		players = append(players, *player)
	}

	requesterListed := false
	for _, id := range req.PlayerIDs {
		if id == req.RequesterID {
			requesterListed = true
			break
		}
	}
	if !requesterListed {
		return nil, NewValidationError("requester is not among the challenge players")
	}

	category, err := s.Categories.FindCategoryOfPlayer(req.RequesterID)
	if err != nil {
		return nil, NewValidationError("requester does not belong to any category")
	}

	challenge := &models.Challenge{
		ID:            uuid.NewString(),
		ChallengeTime: req.ChallengeTime,
		Status:        models.ChallengePending,
		RequestedAt:   s.now(),
		Category:      category.Name,
		RequesterID:   req.RequesterID,
		Players:       players,
	}
	if err := s.Challenges.Create(challenge); err != nil {
		return nil, NewInternalError("failed to save challenge", err)
	}
	return challenge, nil
}

// ListChallenges returns all challenges in insertion order, or only those a
// given player takes part in when playerID is non-empty.
func (s *ChallengeService) ListChallenges(playerID string) ([]models.Challenge, error) {
	if playerID == "" {
		challenges, err := s.Challenges.ListAll()
		if err != nil {
			return nil, NewInternalError("failed to list challenges", err)
		}
		return challenges, nil
	}

	if _, err := s.Players.FindByID(playerID); err != nil {
		return nil, NewValidationError("the id %s is not a player", playerID)
	}
	challenges, err := s.Challenges.ListByPlayer(playerID)
	if err != nil {
		return nil, NewInternalError("failed to list challenges", err)
	}
	return challenges, nil
}

// FindChallenge looks a challenge up by id.
func (s *ChallengeService) FindChallenge(id string) (*models.Challenge, error) {
	challenge, err := s.Challenges.FindByID(id)
	if err != nil {
		return nil, NewNotFoundError("challenge %s not found", id)
	}
	return challenge, nil
}

// UpdateChallenge applies a new date/time and/or status to a stored
// challenge. Any status value from the lifecycle is accepted regardless of
// the current state; each status write, including re-applying the current
// one, refreshes RespondedAt.
func (s *ChallengeService) UpdateChallenge(id string, req UpdateChallengeRequest) (*models.Challenge, error) {
	challenge, err := s.FindChallenge(id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if !models.KnownChallengeStatus(req.Status) {
			return nil, NewValidationError("unknown challenge status %q", req.Status)
		}
		responded := s.now()
		challenge.RespondedAt = &responded
		challenge.Status = req.Status
	}
	if req.ChallengeTime != nil {
		challenge.ChallengeTime = *req.ChallengeTime
	}

	if err := s.Challenges.Update(challenge); err != nil {
		return nil, NewInternalError("failed to update challenge", err)
	}
	return challenge, nil
}

// CancelChallenge marks a challenge CANCELED. Valid from any state; the
// record is kept and a linked match, if any, is untouched.
func (s *ChallengeService) CancelChallenge(id string) error {
	challenge, err := s.FindChallenge(id)
	if err != nil {
		return err
	}

	challenge.Status = models.ChallengeCanceled
	if err := s.Challenges.Update(challenge); err != nil {
		return NewInternalError("failed to cancel challenge", err)
	}
	return nil
}
