package domain

import (
	"strings"
	"sync"
	"time"
)

// SessionCard is a card snapshot presented to the quiz taker; the answer
// stays server-side in the session's answer key.
type SessionCard struct {
	ID       int64
	Question string
	QType    string
	Options  []string
}

type Answer struct {
	CardID    int64
	Given     string
	Correct   bool
	TimeTaken int
}

// Session is a single user's in-flight quiz over one deck. Sessions live
// in process memory for the duration of the quiz.
type Session struct {
	ID             string
	UserID         string
	DeckID         int64
	DeckTitle      string
	DeckOwner      string
	Cards          []SessionCard
	StartedAt      time.Time
	EndsAt         time.Time
	PerCardSeconds int

	mu        sync.Mutex
	answerKey map[int64]string
	answers   map[int64]Answer
}

func NewSession(id, userID string, deckID int64, deckTitle, deckOwner string, perCardSeconds int, duration time.Duration) *Session {
	now := time.Now()

	return &Session{
		ID:             id,
		UserID:         userID,
		DeckID:         deckID,
		DeckTitle:      deckTitle,
		DeckOwner:      deckOwner,
		StartedAt:      now,
		EndsAt:         now.Add(duration),
		PerCardSeconds: perCardSeconds,
		answerKey:      make(map[int64]string),
		answers:        make(map[int64]Answer),
	}
}

// AddCard registers a card and its expected answer with the session.
func (s *Session) AddCard(card SessionCard, answer string) {
	s.Cards = append(s.Cards, card)
	s.answerKey[card.ID] = answer
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.EndsAt)
}

// Record grades the given answer against the answer key and stores the
// attempt, overwriting a previous attempt for the same card. The second
// return is false when the card is not part of the session.
func (s *Session) Record(cardID int64, given string, timeTaken int) (Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expected, ok := s.answerKey[cardID]
	if !ok {
		return Answer{}, false
	}

	answer := Answer{
		CardID:    cardID,
		Given:     given,
		Correct:   strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected)),
		TimeTaken: timeTaken,
	}
	s.answers[cardID] = answer

	return answer, true
}

// Answers returns the recorded attempts in card order.
func (s *Session) Answers() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Answer, 0, len(s.answers))
	for _, card := range s.Cards {
		if a, ok := s.answers[card.ID]; ok {
			out = append(out, a)
		}
	}

	return out
}

func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.answers)
}
