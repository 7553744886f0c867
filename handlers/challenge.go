package handlers

import (
	"log"

	"ranking-league-system/middleware"
	"ranking-league-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupChallengeRoutes(app *fiber.App, challengeService *services.ChallengeService, matchService *services.MatchService) {
	// Public lookups — still behind the global Gateway auth
	app.Get("/challenges", listChallenges(challengeService))
	app.Get("/challenges/:id", getChallenge(challengeService))

	// Mutations additionally require the Gateway user context. Attached per
	// route: a catch-all group would also swallow public lookups registered
	// by other route setups.
	userCtx := middleware.UserContextMiddleware()
	app.Post("/challenges", userCtx, createChallenge(challengeService))
	app.Put("/challenges/:id", userCtx, updateChallenge(challengeService))
	app.Delete("/challenges/:id", userCtx, cancelChallenge(challengeService))
	app.Post("/challenges/:id/match", userCtx, assignMatch(matchService))
}

func createChallenge(s *services.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.CreateChallengeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		if req.ChallengeTime.IsZero() || req.RequesterID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "challenge_time and requester_id are required"})
		}
		challenge, err := s.CreateChallenge(req)
		if err != nil {
			return respondError(c, err)
		}
		log.Printf("challenge %s created by %s", challenge.ID, actingUser(c))
		return c.Status(fiber.StatusCreated).JSON(challenge)
	}
}

func listChallenges(s *services.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		challenges, err := s.ListChallenges(c.Query("player_id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(challenges)
	}
}

func getChallenge(s *services.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		challenge, err := s.FindChallenge(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(challenge)
	}
}

func updateChallenge(s *services.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.UpdateChallengeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		challenge, err := s.UpdateChallenge(c.Params("id"), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(challenge)
	}
}

func cancelChallenge(s *services.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.CancelChallenge(c.Params("id")); err != nil {
			return respondError(c, err)
		}
		log.Printf("challenge %s canceled by %s", c.Params("id"), actingUser(c))
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func assignMatch(s *services.MatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.AssignMatchRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		if req.WinnerID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "winner_id is required"})
		}
		match, err := s.AssignMatch(c.Params("id"), req)
		if err != nil {
			return respondError(c, err)
		}
		log.Printf("challenge %s resolved as match %s by %s", c.Params("id"), match.ID, actingUser(c))
		return c.Status(fiber.StatusCreated).JSON(match)
	}
}
