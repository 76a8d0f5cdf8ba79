package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *QuizHandler, requireAuth fiber.Handler) {
	quizzes := app.Group("/quizzes", requireAuth)

	quizzes.Get("/random-deck", h.RandomDeck)
	quizzes.Post("/start", h.Start)
	quizzes.Post("/:id/answers", h.SubmitAnswer)
	quizzes.Post("/:id/finish", h.Finish)
}
