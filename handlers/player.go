package handlers

import (
	"log"
	"path/filepath"

	"ranking-league-system/middleware"
	"ranking-league-system/services"
	"ranking-league-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	// Public lookups — still behind the global Gateway auth
	app.Get("/players", listPlayers(playerService))
	app.Get("/players/search", searchPlayers(playerService))
	app.Get("/players/:id", getPlayer(playerService))

	// Mutations additionally require the Gateway user context, per route
	userCtx := middleware.UserContextMiddleware()
	app.Post("/players", userCtx, createPlayer(playerService))
	app.Put("/players/:id", userCtx, updatePlayer(playerService))
	app.Delete("/players/:id", userCtx, deletePlayer(playerService))
	app.Post("/players/:id/avatar", userCtx, uploadPlayerAvatar(playerService))
}

func createPlayer(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.CreatePlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		player, err := s.CreatePlayer(req)
		if err != nil {
			return respondError(c, err)
		}
		log.Printf("player %s registered by %s", player.ID, actingUser(c))
		return c.Status(fiber.StatusCreated).JSON(player)
	}
}

func listPlayers(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		players, err := s.ListPlayers()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(players)
	}
}

func searchPlayers(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		players, err := s.SearchPlayers(c.Query("q"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(players)
	}
}

func getPlayer(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		player, err := s.FindPlayerByID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(player)
	}
}

func updatePlayer(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.UpdatePlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		player, err := s.UpdatePlayer(c.Params("id"), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(player)
	}
}

func deletePlayer(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.DeletePlayer(c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func uploadPlayerAvatar(s *services.PlayerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, err := s.FindPlayerByID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		previousURL := current.PhotoURL

		avatar, err := c.FormFile("avatar")
		if err != nil || avatar.Size == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
		}

		ext := filepath.Ext(avatar.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		name := uuid.NewString() + ext

		var url string
		if utils.R2Enabled() {
			url, err = utils.UploadFileToR2(avatar, "players/avatars/"+name)
		} else {
			url, err = utils.SaveUpload(avatar, filepath.Join("avatars", name))
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store avatar"})
		}

		player, err := s.SetPlayerPhoto(current.ID, url)
		if err != nil {
			return respondError(c, err)
		}

		// The replaced object is unreachable once the new URL is recorded
		if key, ok := utils.R2KeyFromURL(previousURL); ok {
			if err := utils.DeleteFileFromR2(key); err != nil {
				log.Printf("failed to delete replaced avatar %s: %v", key, err)
			}
		}

		log.Printf("avatar updated for player %s by %s", player.ID, actingUser(c))
		return c.JSON(player)
	}
}
