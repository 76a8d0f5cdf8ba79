package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the deck routes behind the auth guard. Static
// paths register before the :id routes so /decks/my is not captured as a
// deck id.
func RegisterRoutes(app *fiber.App, h *DeckHandler, requireAuth fiber.Handler) {
	decks := app.Group("/decks", requireAuth)

	decks.Post("/", h.Create)
	decks.Get("/", h.List)
	decks.Get("/my", h.ListMine)
	decks.Get("/public", h.ListPublic)

	decks.Get("/:id", h.Get)
	decks.Patch("/:id", h.Update)
	decks.Delete("/:id", h.Delete)

	decks.Post("/:id/favorite", h.Favourite)
	decks.Delete("/:id/favorite", h.Unfavourite)
	decks.Post("/:id/like", h.Like)
	decks.Delete("/:id/like", h.Unlike)

	decks.Post("/:id/cards", h.AddCard)
	decks.Get("/:id/cards", h.ListCards)
	decks.Get("/:id/cards/:cardID", h.GetCard)
	decks.Patch("/:id/cards/:cardID", h.UpdateCard)
	decks.Delete("/:id/cards/:cardID", h.DeleteCard)
}
