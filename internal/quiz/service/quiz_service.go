package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	deckservice "github.com/gokul-1998/flashdeck-service/internal/deck/service"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/domain"
	"github.com/gokul-1998/flashdeck-service/internal/quiz/dto"
)

const defaultPerCardSeconds = 10

type QuizService struct {
	decks *deckservice.DeckService
	store domain.SessionStore
}

func NewQuizService(decks *deckservice.DeckService, store domain.SessionStore) *QuizService {
	return &QuizService{decks: decks, store: store}
}

// Start snapshots a readable, non-empty deck into a new session. Answers
// never leave the server; the taker only sees questions and options.
func (s *QuizService) Start(ctx context.Context, userID string, input dto.StartInput) (*dto.StartOutput, error) {
	deck, err := s.decks.Get(ctx, userID, input.DeckID)
	if err != nil {
		return nil, err
	}

	cards, err := s.decks.ListCards(ctx, userID, input.DeckID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: deck has no cards to test", apperrors.ErrValidation)
	}

	ownerEmail, err := s.decks.OwnerEmail(ctx, input.DeckID)
	if err != nil {
		return nil, err
	}

	perCard := input.PerCardSeconds
	if perCard <= 0 {
		perCard = defaultPerCardSeconds
	}

	limitSeconds := len(cards) * perCard
	if input.TotalTimeSeconds != nil {
		if *input.TotalTimeSeconds <= 0 {
			return nil, fmt.Errorf("%w: total_time_seconds must be positive", apperrors.ErrValidation)
		}
		limitSeconds = *input.TotalTimeSeconds
	}

	session := domain.NewSession(uuid.NewString(), userID, deck.ID, deck.Title, ownerEmail,
		perCard, time.Duration(limitSeconds)*time.Second)

	for _, card := range cards {
		session.AddCard(domain.SessionCard{
			ID:       card.ID,
			Question: card.Question,
			QType:    card.QType,
			Options:  card.Options,
		}, card.Answer)
	}

	s.store.Put(session)

	out := &dto.StartOutput{
		SessionID:        session.ID,
		DeckID:           deck.ID,
		DeckTitle:        deck.Title,
		DeckOwner:        ownerEmail,
		TotalCards:       len(session.Cards),
		StartedAt:        session.StartedAt,
		PerCardSeconds:   perCard,
		TimeLimitSeconds: limitSeconds,
		EndsAt:           session.EndsAt,
	}
	for _, card := range session.Cards {
		out.Cards = append(out.Cards, dto.SessionCardOutput{
			ID:       card.ID,
			Question: card.Question,
			QType:    card.QType,
			Options:  card.Options,
		})
	}

	return out, nil
}

// RandomDeck suggests a random public deck to quiz against, optionally
// filtered by subject tag.
func (s *QuizService) RandomDeck(ctx context.Context, subject string) (*dto.RandomDeckOutput, error) {
	deck, err := s.decks.RandomPublicDeck(ctx, subject)
	if err != nil {
		return nil, err
	}

	return &dto.RandomDeckOutput{
		ID:          deck.ID,
		Title:       deck.Title,
		Description: deck.Description,
		Tags:        deck.Tags,
		Owner:       deck.OwnerEmail,
		CardCount:   deck.CardCount,
		CreatedAt:   deck.CreatedAt,
	}, nil
}

func (s *QuizService) SubmitAnswer(userID, sessionID string, input dto.AnswerInput) (*dto.AnswerOutput, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		return nil, fmt.Errorf("%w: session has ended", apperrors.ErrValidation)
	}

	answer, ok := session.Record(input.CardID, input.Answer, input.TimeTaken)
	if !ok {
		return nil, apperrors.ErrCardNotFound
	}

	return &dto.AnswerOutput{
		CardID:        answer.CardID,
		Correct:       answer.Correct,
		AnsweredCount: session.AnsweredCount(),
		TotalCards:    len(session.Cards),
	}, nil
}

func (s *QuizService) Finish(userID, sessionID string) (*dto.ResultOutput, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	answers := session.Answers()

	correct := 0
	out := &dto.ResultOutput{
		SessionID:   session.ID,
		DeckTitle:   session.DeckTitle,
		DeckOwner:   session.DeckOwner,
		TotalCards:  len(session.Cards),
		CompletedAt: time.Now(),
		Answers:     make([]dto.ResultAnswer, 0, len(answers)),
	}
	for _, a := range answers {
		if a.Correct {
			correct++
		}
		out.Answers = append(out.Answers, dto.ResultAnswer{
			CardID:    a.CardID,
			Answer:    a.Given,
			Correct:   a.Correct,
			TimeTaken: a.TimeTaken,
		})
	}
	out.CorrectAnswers = correct
	if len(session.Cards) > 0 {
		out.Accuracy = float64(correct) / float64(len(session.Cards))
	}

	s.store.Delete(session.ID)

	return out, nil
}

// session resolves a session for its owner. Other users get the same
// not-found as a missing session.
func (s *QuizService) session(userID, sessionID string) (*domain.Session, error) {
	session := s.store.Get(sessionID)
	if session == nil || session.UserID != userID {
		return nil, apperrors.ErrSessionNotFound
	}

	return session, nil
}
