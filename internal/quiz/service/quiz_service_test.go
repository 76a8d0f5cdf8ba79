package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckdomain "github.com/gokul-1998/flashdeck-service/internal/deck/domain"
	deckservice "github.com/gokul-1998/flashdeck-service/internal/deck/service"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
	"github.com/gokul-1998/flashdeck-service/internal/mocks"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/domain"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/dto"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/service"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/store"
)

func newQuizService(t *testing.T) (*service.QuizService, *mocks.MockDeckRepository, *store.MemoryStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockDeckRepository(ctrl)
	decks := deckservice.NewDeckService(mockRepo, 100)
	sessions := store.NewMemoryStore()

	return service.NewQuizService(decks, sessions), mockRepo, sessions
}

func expectDeckWithCards(mockRepo *mocks.MockDeckRepository, deck *deckdomain.Deck, cards []deckdomain.Card) {
	// Start reads the deck twice: once directly and once while listing
	// its cards.
	mockRepo.EXPECT().GetByID(gomock.Any(), deck.ID).Return(deck, nil).Times(2)
	mockRepo.EXPECT().ListCards(gomock.Any(), deck.ID).Return(cards, nil)
	mockRepo.EXPECT().GetOwnerEmail(gomock.Any(), deck.ID).Return("owner@example.com", nil)
}

func TestQuizService_Start(t *testing.T) {
	s, mockRepo, sessions := newQuizService(t)
	ctx := context.Background()

	deck := &deckdomain.Deck{ID: 7, OwnerID: "owner-1", Title: "Spanish 101", Visibility: deckdomain.VisibilityPublic}
	cards := []deckdomain.Card{
		{ID: 31, DeckID: 7, QType: deckdomain.QuestionFillups, Question: "hola means ___", Answer: "hello"},
		{ID: 32, DeckID: 7, QType: deckdomain.QuestionMCQ, Question: "uno?", Answer: "one", Options: []string{"one", "two", "three", "four"}},
	}

	t.Run("success with default timing", func(t *testing.T) {
		expectDeckWithCards(mockRepo, deck, cards)

		out, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 7})

		require.NoError(t, err)
		assert.NotEmpty(t, out.SessionID)
		assert.Equal(t, "Spanish 101", out.DeckTitle)
		assert.Equal(t, "owner@example.com", out.DeckOwner)
		assert.Equal(t, 2, out.TotalCards)
		assert.Equal(t, 10, out.PerCardSeconds)
		assert.Equal(t, 20, out.TimeLimitSeconds)
		require.Len(t, out.Cards, 2)
		assert.Equal(t, "hola means ___", out.Cards[0].Question)

		require.NotNil(t, sessions.Get(out.SessionID))
	})

	t.Run("explicit total time wins", func(t *testing.T) {
		expectDeckWithCards(mockRepo, deck, cards)

		total := 45
		out, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 7, PerCardSeconds: 5, TotalTimeSeconds: &total})

		require.NoError(t, err)
		assert.Equal(t, 5, out.PerCardSeconds)
		assert.Equal(t, 45, out.TimeLimitSeconds)
	})

	t.Run("non-positive total time rejected", func(t *testing.T) {
		expectDeckWithCards(mockRepo, deck, cards)

		total := 0
		_, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 7, TotalTimeSeconds: &total})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("empty deck rejected", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), deck.ID).Return(deck, nil).Times(2)
		mockRepo.EXPECT().ListCards(gomock.Any(), deck.ID).Return(nil, nil)

		_, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 7})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("private deck hidden from strangers", func(t *testing.T) {
		private := &deckdomain.Deck{ID: 9, OwnerID: "owner-1", Visibility: deckdomain.VisibilityPrivate}
		mockRepo.EXPECT().GetByID(gomock.Any(), private.ID).Return(private, nil)

		_, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 9})
		assert.ErrorIs(t, err, apperrors.ErrDeckNotFound)
	})
}

func TestQuizService_RandomDeck(t *testing.T) {
	s, mockRepo, _ := newQuizService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		summary := &deckdomain.DeckSummary{
			Deck: deckdomain.Deck{
				ID:         7,
				Title:      "Spanish 101",
				Tags:       "lang,spanish",
				Visibility: deckdomain.VisibilityPublic,
			},
			OwnerEmail: "owner@example.com",
			CardCount:  12,
		}
		mockRepo.EXPECT().RandomPublicDeck(gomock.Any(), "lang").Return(summary, nil)

		out, err := s.RandomDeck(ctx, "lang")

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "owner@example.com", out.Owner)
		assert.Equal(t, 12, out.CardCount)
	})

	t.Run("nothing public", func(t *testing.T) {
		mockRepo.EXPECT().RandomPublicDeck(gomock.Any(), "").Return(nil, nil)

		_, err := s.RandomDeck(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrDeckNotFound)
	})
}

func TestQuizService_SubmitAnswer(t *testing.T) {
	s, mockRepo, sessions := newQuizService(t)
	ctx := context.Background()

	deck := &deckdomain.Deck{ID: 7, OwnerID: "owner-1", Title: "Spanish 101", Visibility: deckdomain.VisibilityPublic}
	cards := []deckdomain.Card{
		{ID: 31, DeckID: 7, QType: deckdomain.QuestionFillups, Question: "hola means ___", Answer: "hello"},
	}

	expectDeckWithCards(mockRepo, deck, cards)
	started, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 7})
	require.NoError(t, err)

	t.Run("correct answer is case-insensitive", func(t *testing.T) {
		out, err := s.SubmitAnswer("taker", started.SessionID, dto.AnswerInput{CardID: 31, Answer: "  HELLO "})

		require.NoError(t, err)
		assert.True(t, out.Correct)
		assert.Equal(t, 1, out.AnsweredCount)
		assert.Equal(t, 1, out.TotalCards)
	})

	t.Run("wrong answer recorded but marked incorrect", func(t *testing.T) {
		out, err := s.SubmitAnswer("taker", started.SessionID, dto.AnswerInput{CardID: 31, Answer: "goodbye"})

		require.NoError(t, err)
		assert.False(t, out.Correct)
		assert.Equal(t, 1, out.AnsweredCount)
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := s.SubmitAnswer("taker", started.SessionID, dto.AnswerInput{CardID: 404, Answer: "x"})
		assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
	})

	t.Run("another user cannot touch the session", func(t *testing.T) {
		_, err := s.SubmitAnswer("someone-else", started.SessionID, dto.AnswerInput{CardID: 31, Answer: "hello"})
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		expired := domain.NewSession("expired-id", "taker", 7, "Spanish 101", "owner@example.com", 10, -time.Second)
		expired.AddCard(domain.SessionCard{ID: 31, Question: "q"}, "hello")
		sessions.Put(expired)

		_, err := s.SubmitAnswer("taker", "expired-id", dto.AnswerInput{CardID: 31, Answer: "hello"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestQuizService_Finish(t *testing.T) {
	s, mockRepo, sessions := newQuizService(t)
	ctx := context.Background()

	deck := &deckdomain.Deck{ID: 7, OwnerID: "owner-1", Title: "Spanish 101", Visibility: deckdomain.VisibilityPublic}
	cards := []deckdomain.Card{
		{ID: 31, DeckID: 7, QType: deckdomain.QuestionFillups, Question: "hola", Answer: "hello"},
		{ID: 32, DeckID: 7, QType: deckdomain.QuestionFillups, Question: "adios", Answer: "goodbye"},
		{ID: 33, DeckID: 7, QType: deckdomain.QuestionFillups, Question: "uno", Answer: "one"},
	}

	expectDeckWithCards(mockRepo, deck, cards)
	started, err := s.Start(ctx, "taker", dto.StartInput{DeckID: 7})
	require.NoError(t, err)

	_, err = s.SubmitAnswer("taker", started.SessionID, dto.AnswerInput{CardID: 31, Answer: "hello", TimeTaken: 4})
	require.NoError(t, err)
	_, err = s.SubmitAnswer("taker", started.SessionID, dto.AnswerInput{CardID: 32, Answer: "hasta luego"})
	require.NoError(t, err)

	result, err := s.Finish("taker", started.SessionID)

	require.NoError(t, err)
	assert.Equal(t, started.SessionID, result.SessionID)
	assert.Equal(t, "Spanish 101", result.DeckTitle)
	assert.Equal(t, 3, result.TotalCards)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.InDelta(t, 1.0/3.0, result.Accuracy, 1e-9)
	require.Len(t, result.Answers, 2)
	assert.Equal(t, int64(31), result.Answers[0].CardID)
	assert.True(t, result.Answers[0].Correct)
	assert.Equal(t, 4, result.Answers[0].TimeTaken)
	assert.False(t, result.Answers[1].Correct)

	// Finishing tears the session down.
	assert.Nil(t, sessions.Get(started.SessionID))

	_, err = s.Finish("taker", started.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
