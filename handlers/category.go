package handlers

import (
	"log"

	"ranking-league-system/middleware"
	"ranking-league-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App, categoryService *services.CategoryService) {
	// Public lookups — still behind the global Gateway auth
	app.Get("/categories", listCategories(categoryService))
	app.Get("/categories/:name", getCategory(categoryService))

	// Mutations additionally require the Gateway user context, per route
	userCtx := middleware.UserContextMiddleware()
	app.Post("/categories", userCtx, createCategory(categoryService))
	app.Put("/categories/:name", userCtx, updateCategory(categoryService))
	app.Delete("/categories/:name", userCtx, deleteCategory(categoryService))
	app.Post("/categories/:name/players/:player_id", userCtx, assignPlayer(categoryService))
}

func createCategory(s *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		category, err := s.CreateCategory(req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

func listCategories(s *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := s.ListCategories()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(categories)
	}
}

func getCategory(s *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := s.FindCategoryByName(c.Params("name"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(category)
	}
}

func updateCategory(s *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.UpdateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		category, err := s.UpdateCategory(c.Params("name"), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(category)
	}
}

func deleteCategory(s *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.DeleteCategory(c.Params("name")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func assignPlayer(s *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := s.AssignPlayerToCategory(c.Params("name"), c.Params("player_id"))
		if err != nil {
			return respondError(c, err)
		}
		log.Printf("player %s assigned to category %s by %s", c.Params("player_id"), category.Name, actingUser(c))
		return c.JSON(category)
	}
}
