package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokul-1998/flashdeck-service/internal/deck/domain"
	"github.com/gokul-1998/flashdeck-service/internal/deck/dto"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

func TestDeckService_AddCard(t *testing.T) {
	s, mockRepo := newDeckService(t)
	ctx := context.Background()

	ownedDeck := &domain.Deck{ID: 1, OwnerID: "owner-1", Visibility: domain.VisibilityPrivate}

	t.Run("fillups card", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().CreateCard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, card *domain.Card) error {
				card.ID = 10
				return nil
			})

		card, err := s.AddCard(ctx, "owner-1", 1, dto.CardCreateInput{
			QType:    domain.QuestionFillups,
			Question: "Capital of France is ___",
			Answer:   "Paris",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10), card.ID)
		assert.Equal(t, int64(1), card.DeckID)
	})

	t.Run("mcq needs at least four options", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)

		_, err := s.AddCard(ctx, "owner-1", 1, dto.CardCreateInput{
			QType:    domain.QuestionMCQ,
			Question: "2+2?",
			Answer:   "4",
			Options:  []string{"3", "4", "5"},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("mcq with four options passes", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.AddCard(ctx, "owner-1", 1, dto.CardCreateInput{
			QType:    domain.QuestionMCQ,
			Question: "2+2?",
			Answer:   "4",
			Options:  []string{"3", "4", "5", "6"},
		})
		require.NoError(t, err)
	})

	t.Run("blank mcq option rejected", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)

		_, err := s.AddCard(ctx, "owner-1", 1, dto.CardCreateInput{
			QType:    domain.QuestionMCQ,
			Question: "2+2?",
			Answer:   "4",
			Options:  []string{"3", "4", "5", "  "},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("options forbidden outside mcq", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)

		_, err := s.AddCard(ctx, "owner-1", 1, dto.CardCreateInput{
			QType:    domain.QuestionMatch,
			Question: "match",
			Answer:   "pairs",
			Options:  []string{"a"},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unknown qtype", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)

		_, err := s.AddCard(ctx, "owner-1", 1, dto.CardCreateInput{
			QType:    "essay",
			Question: "q",
			Answer:   "a",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("only the owner adds cards", func(t *testing.T) {
		publicDeck := &domain.Deck{ID: 2, OwnerID: "owner-1", Visibility: domain.VisibilityPublic}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(publicDeck, nil)

		_, err := s.AddCard(ctx, "stranger", 2, dto.CardCreateInput{
			QType:    domain.QuestionFillups,
			Question: "q",
			Answer:   "a",
		})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestDeckService_GetCard(t *testing.T) {
	s, mockRepo := newDeckService(t)
	ctx := context.Background()

	publicDeck := &domain.Deck{ID: 1, OwnerID: "owner-1", Visibility: domain.VisibilityPublic}

	t.Run("any viewer reads cards of a public deck", func(t *testing.T) {
		card := &domain.Card{ID: 10, DeckID: 1, QType: domain.QuestionFillups, Question: "q", Answer: "a"}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(publicDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(10)).Return(card, nil)

		got, err := s.GetCard(ctx, "stranger", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, card, got)
	})

	t.Run("missing card", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(publicDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(404)).Return(nil, nil)

		_, err := s.GetCard(ctx, "stranger", 1, 404)
		assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
	})
}

func TestDeckService_UpdateCard(t *testing.T) {
	s, mockRepo := newDeckService(t)
	ctx := context.Background()

	ownedDeck := &domain.Deck{ID: 1, OwnerID: "owner-1", Visibility: domain.VisibilityPrivate}

	t.Run("partial update revalidates", func(t *testing.T) {
		card := &domain.Card{
			ID: 10, DeckID: 1, QType: domain.QuestionMCQ,
			Question: "2+2?", Answer: "4",
			Options: []string{"3", "4", "5", "6"},
		}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(10)).Return(card, nil)
		mockRepo.EXPECT().UpdateCard(gomock.Any(), gomock.Any()).Return(nil)

		answer := "four"
		updated, err := s.UpdateCard(ctx, "owner-1", 1, 10, dto.CardUpdateInput{Answer: &answer})

		require.NoError(t, err)
		assert.Equal(t, "four", updated.Answer)
		assert.Equal(t, "2+2?", updated.Question)
	})

	t.Run("shrinking mcq options below the minimum fails", func(t *testing.T) {
		card := &domain.Card{
			ID: 10, DeckID: 1, QType: domain.QuestionMCQ,
			Question: "2+2?", Answer: "4",
			Options: []string{"3", "4", "5", "6"},
		}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(10)).Return(card, nil)

		_, err := s.UpdateCard(ctx, "owner-1", 1, 10, dto.CardUpdateInput{Options: []string{"4", "5"}})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing card", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(404)).Return(nil, nil)

		answer := "x"
		_, err := s.UpdateCard(ctx, "owner-1", 1, 404, dto.CardUpdateInput{Answer: &answer})
		assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
	})
}

func TestDeckService_DeleteCard(t *testing.T) {
	s, mockRepo := newDeckService(t)
	ctx := context.Background()

	ownedDeck := &domain.Deck{ID: 1, OwnerID: "owner-1", Visibility: domain.VisibilityPrivate}
	card := &domain.Card{ID: 10, DeckID: 1}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(10)).Return(card, nil)
		mockRepo.EXPECT().DeleteCard(gomock.Any(), int64(1), int64(10)).Return(nil)

		require.NoError(t, s.DeleteCard(ctx, "owner-1", 1, 10))
	})

	t.Run("missing card", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ownedDeck, nil)
		mockRepo.EXPECT().GetCard(gomock.Any(), int64(1), int64(404)).Return(nil, nil)

		assert.ErrorIs(t, s.DeleteCard(ctx, "owner-1", 1, 404), apperrors.ErrCardNotFound)
	})
}

func TestDeckService_ListCards(t *testing.T) {
	s, mockRepo := newDeckService(t)
	ctx := context.Background()

	privateDeck := &domain.Deck{ID: 1, OwnerID: "owner-1", Visibility: domain.VisibilityPrivate}

	t.Run("owner lists cards", func(t *testing.T) {
		cards := []domain.Card{{ID: 10, DeckID: 1}, {ID: 11, DeckID: 1}}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(privateDeck, nil)
		mockRepo.EXPECT().ListCards(gomock.Any(), int64(1)).Return(cards, nil)

		got, err := s.ListCards(ctx, "owner-1", 1)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("stranger cannot list a private deck's cards", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(privateDeck, nil)

		_, err := s.ListCards(ctx, "stranger", 1)
		assert.ErrorIs(t, err, apperrors.ErrDeckNotFound)
	})
}
