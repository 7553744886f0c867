package services

import (
	"log"
	"time"

	"ranking-league-system/models"

	"github.com/google/uuid"
)

// MatchService turns an accepted challenge into a recorded match. The match
// is written first and the challenge update second; when the challenge
// update fails the match is deleted again, so no match outlives a challenge
// that does not reference it.
type MatchService struct {
	Matches    MatchRepository
	Challenges ChallengeRepository

	now func() time.Time
}

func NewMatchService(matches MatchRepository, challenges ChallengeRepository) *MatchService {
	return &MatchService{
		Matches:    matches,
		Challenges: challenges,
		now:        time.Now,
	}
}

// AssignMatchRequest names the winner of a challenge being resolved.
type AssignMatchRequest struct {
	WinnerID string `json:"winner_id"`
}

// AssignMatch records the outcome of a challenge: it creates a match copying
// the challenge's category and participants, then transitions the challenge
// to RESOLVED with the match linked. There is no cross-record transaction;
// if the challenge update fails the match created here is deleted before the
// error is returned.
func (s *MatchService) AssignMatch(challengeID string, req AssignMatchRequest) (*models.Match, error) {
	challenge, err := s.Challenges.FindByID(challengeID)
	if err != nil {
		return nil, NewNotFoundError("challenge %s not found", challengeID)
	}

	if !challenge.HasParticipant(req.WinnerID) {
		return nil, NewValidationError("designated winner is not a participant of the challenge")
	}

	match := &models.Match{
		ID:       uuid.NewString(),
		Category: challenge.Category,
		Players:  challenge.Players,
		WinnerID: req.WinnerID,
		PlayedAt: s.now(),
	}
	if err := s.Matches.Create(match); err != nil {
		return nil, NewInternalError("failed to save match", err)
	}

	challenge.Status = models.ChallengeResolved
	challenge.MatchID = &match.ID

	if err := s.Challenges.Update(challenge); err != nil {
		// Compensating delete: the challenge was not finalized, so the match
		// written above must not survive.
		if delErr := s.Matches.Delete(match.ID); delErr != nil {
			log.Printf("failed to delete match %s after challenge update error: %v", match.ID, delErr)
		}
		return nil, NewInternalError("challenge could not be finalized; no match was recorded", err)
	}

	return match, nil
}
