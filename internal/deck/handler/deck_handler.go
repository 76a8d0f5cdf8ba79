package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/gokul-1998/flashdeck-service/internal/auth/handler"
	"github.com/gokul-1998/flashdeck-service/internal/deck/domain"
	"github.com/gokul-1998/flashdeck-service/internal/deck/dto"
	"github.com/gokul-1998/flashdeck-service/internal/deck/service"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

type DeckHandler struct {
	deckService *service.DeckService
}

func NewDeckHandler(deckService *service.DeckService) *DeckHandler {
	return &DeckHandler{deckService: deckService}
}

func (h *DeckHandler) Create(c *fiber.Ctx) error {
	var input dto.DeckCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user := authhandler.CurrentUser(c)

	deck, err := h.deckService.Create(c.Context(), user.ID, input)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(deckOutput(deck))
}

func (h *DeckHandler) List(c *fiber.Ctx) error {
	return h.list(c, domain.ScopeVisible)
}

func (h *DeckHandler) ListMine(c *fiber.Ctx) error {
	return h.list(c, domain.ScopeMine)
}

func (h *DeckHandler) ListPublic(c *fiber.Ctx) error {
	return h.list(c, domain.ScopePublic)
}

func (h *DeckHandler) list(c *fiber.Ctx, scope domain.ListScope) error {
	var query dto.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}

	user := authhandler.CurrentUser(c)

	page, err := h.deckService.List(c.Context(), user.ID, scope, query)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	setPageHeaders(c, page)

	return c.Status(fiber.StatusOK).JSON(page.Items)
}

func (h *DeckHandler) Get(c *fiber.Ctx) error {
	deckID, err := deckParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid deck id"})
	}

	user := authhandler.CurrentUser(c)

	deck, err := h.deckService.Get(c.Context(), user.ID, deckID)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(deckOutput(deck))
}

func (h *DeckHandler) Update(c *fiber.Ctx) error {
	deckID, err := deckParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid deck id"})
	}

	var input dto.DeckUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user := authhandler.CurrentUser(c)

	deck, err := h.deckService.Update(c.Context(), user.ID, deckID, input)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(deckOutput(deck))
}

func (h *DeckHandler) Delete(c *fiber.Ctx) error {
	deckID, err := deckParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid deck id"})
	}

	user := authhandler.CurrentUser(c)

	if err := h.deckService.Delete(c.Context(), user.ID, deckID); err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DeckHandler) Favourite(c *fiber.Ctx) error {
	return h.toggle(c, h.deckService.Favourite)
}

func (h *DeckHandler) Unfavourite(c *fiber.Ctx) error {
	return h.toggle(c, h.deckService.Unfavourite)
}

func (h *DeckHandler) Like(c *fiber.Ctx) error {
	return h.toggle(c, h.deckService.Like)
}

func (h *DeckHandler) Unlike(c *fiber.Ctx) error {
	return h.toggle(c, h.deckService.Unlike)
}

func (h *DeckHandler) toggle(c *fiber.Ctx, op func(ctx context.Context, viewerID string, deckID int64) error) error {
	deckID, err := deckParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid deck id"})
	}

	user := authhandler.CurrentUser(c)

	if err := op(c.Context(), user.ID, deckID); err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func deckParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func deckOutput(deck *domain.Deck) dto.DeckOutput {
	return dto.DeckOutput{
		ID:          deck.ID,
		Title:       deck.Title,
		Description: deck.Description,
		Tags:        deck.Tags,
		Visibility:  deck.Visibility,
		OwnerID:     deck.OwnerID,
		CreatedAt:   deck.CreatedAt,
	}
}

func setPageHeaders(c *fiber.Ctx, page *dto.DeckPage) {
	c.Set("X-Total-Count", strconv.Itoa(page.Total))
	c.Set("X-Page", strconv.Itoa(page.Page))
	c.Set("X-Page-Size", strconv.Itoa(page.Size))
	c.Set("X-Total-Pages", strconv.Itoa(page.TotalPages))
}
