package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gokul-1998/flashdeck-service/internal/deck/domain"
	"github.com/gokul-1998/flashdeck-service/internal/deck/dto"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

// AddCard creates a card in a deck owned by the viewer.
func (s *DeckService) AddCard(ctx context.Context, viewerID string, deckID int64, input dto.CardCreateInput) (*domain.Card, error) {
	deck, err := s.ownedDeck(ctx, viewerID, deckID)
	if err != nil {
		return nil, err
	}

	if err := validateCard(input.QType, input.Question, input.Answer, input.Options); err != nil {
		return nil, err
	}

	card := &domain.Card{
		DeckID:   deck.ID,
		QType:    input.QType,
		Question: input.Question,
		Answer:   input.Answer,
		Options:  input.Options,
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

func (s *DeckService) ListCards(ctx context.Context, viewerID string, deckID int64) ([]domain.Card, error) {
	if _, err := s.visibleDeck(ctx, viewerID, deckID); err != nil {
		return nil, err
	}

	return s.repo.ListCards(ctx, deckID)
}

func (s *DeckService) GetCard(ctx context.Context, viewerID string, deckID, cardID int64) (*domain.Card, error) {
	if _, err := s.visibleDeck(ctx, viewerID, deckID); err != nil {
		return nil, err
	}

	card, err := s.repo.GetCard(ctx, deckID, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperrors.ErrCardNotFound
	}

	return card, nil
}

func (s *DeckService) UpdateCard(ctx context.Context, viewerID string, deckID, cardID int64, input dto.CardUpdateInput) (*domain.Card, error) {
	if _, err := s.ownedDeck(ctx, viewerID, deckID); err != nil {
		return nil, err
	}

	card, err := s.repo.GetCard(ctx, deckID, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperrors.ErrCardNotFound
	}

	if input.Question != nil {
		card.Question = *input.Question
	}
	if input.Answer != nil {
		card.Answer = *input.Answer
	}
	if input.Options != nil {
		card.Options = input.Options
	}

	if err := validateCard(card.QType, card.Question, card.Answer, card.Options); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCard(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

func (s *DeckService) DeleteCard(ctx context.Context, viewerID string, deckID, cardID int64) error {
	if _, err := s.ownedDeck(ctx, viewerID, deckID); err != nil {
		return err
	}

	card, err := s.repo.GetCard(ctx, deckID, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		return apperrors.ErrCardNotFound
	}

	return s.repo.DeleteCard(ctx, deckID, cardID)
}

func validateCard(qtype, question, answer string, options []string) error {
	switch qtype {
	case domain.QuestionMCQ, domain.QuestionMatch, domain.QuestionFillups:
	default:
		return fmt.Errorf("%w: qtype must be one of mcq, match, fillups", apperrors.ErrValidation)
	}

	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return fmt.Errorf("%w: question and answer are required", apperrors.ErrValidation)
	}

	if qtype == domain.QuestionMCQ {
		if len(options) < domain.MinMCQOptions {
			return fmt.Errorf("%w: for mcq, options must include at least %d items", apperrors.ErrValidation, domain.MinMCQOptions)
		}
		for _, opt := range options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("%w: all mcq options must be non-empty", apperrors.ErrValidation)
			}
		}
	} else if len(options) > 0 {
		return fmt.Errorf("%w: options are only allowed for mcq cards", apperrors.ErrValidation)
	}

	return nil
}
