package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/gokul-1998/flashdeck-service/internal/auth/handler"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/dto"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/service"
)

type QuizHandler struct {
	quizService *service.QuizService
}

func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) Start(c *fiber.Ctx) error {
	var input dto.StartInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user := authhandler.CurrentUser(c)

	out, err := h.quizService.Start(c.Context(), user.ID, input)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *QuizHandler) RandomDeck(c *fiber.Ctx) error {
	out, err := h.quizService.RandomDeck(c.Context(), c.Query("subject"))
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var input dto.AnswerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user := authhandler.CurrentUser(c)

	out, err := h.quizService.SubmitAnswer(user.ID, c.Params("id"), input)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *QuizHandler) Finish(c *fiber.Ctx) error {
	user := authhandler.CurrentUser(c)

	out, err := h.quizService.Finish(user.ID, c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
