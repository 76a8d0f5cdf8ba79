package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/gokul-1998/flashdeck-service/internal/auth/handler"
	"github.com/gokul-1998/flashdeck-service/internal/deck/domain"
	"github.com/gokul-1998/flashdeck-service/internal/deck/dto"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

func (h *DeckHandler) AddCard(c *fiber.Ctx) error {
	deckID, err := deckParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid deck id"})
	}

	var input dto.CardCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user := authhandler.CurrentUser(c)

	card, err := h.deckService.AddCard(c.Context(), user.ID, deckID, input)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(cardOutput(card))
}

func (h *DeckHandler) ListCards(c *fiber.Ctx) error {
	deckID, err := deckParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid deck id"})
	}

	user := authhandler.CurrentUser(c)

	cards, err := h.deckService.ListCards(c.Context(), user.ID, deckID)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]dto.CardOutput, 0, len(cards))
	for i := range cards {
		out = append(out, cardOutput(&cards[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *DeckHandler) GetCard(c *fiber.Ctx) error {
	deckID, cardID, err := cardParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	user := authhandler.CurrentUser(c)

	card, err := h.deckService.GetCard(c.Context(), user.ID, deckID, cardID)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(cardOutput(card))
}

func (h *DeckHandler) UpdateCard(c *fiber.Ctx) error {
	deckID, cardID, err := cardParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var input dto.CardUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user := authhandler.CurrentUser(c)

	card, err := h.deckService.UpdateCard(c.Context(), user.ID, deckID, cardID, input)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(cardOutput(card))
}

func (h *DeckHandler) DeleteCard(c *fiber.Ctx) error {
	deckID, cardID, err := cardParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	user := authhandler.CurrentUser(c)

	if err := h.deckService.DeleteCard(c.Context(), user.ID, deckID, cardID); err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func cardParams(c *fiber.Ctx) (int64, int64, error) {
	deckID, err := deckParam(c)
	if err != nil {
		return 0, 0, err
	}
	cardID, err := strconv.ParseInt(c.Params("cardID"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return deckID, cardID, nil
}

func cardOutput(card *domain.Card) dto.CardOutput {
	return dto.CardOutput{
		ID:       card.ID,
		DeckID:   card.DeckID,
		QType:    card.QType,
		Question: card.Question,
		Answer:   card.Answer,
		Options:  card.Options,
	}
}
