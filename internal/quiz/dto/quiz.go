package dto

import "time"

type StartInput struct {
	DeckID           int64 `json:"deck_id"`
	PerCardSeconds   int   `json:"per_card_seconds"`
	TotalTimeSeconds *int  `json:"total_time_seconds"`
}

type SessionCardOutput struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	QType    string   `json:"qtype"`
	Options  []string `json:"options,omitempty"`
}

type StartOutput struct {
	SessionID        string              `json:"session_id"`
	DeckID           int64               `json:"deck_id"`
	DeckTitle        string              `json:"deck_title"`
	DeckOwner        string              `json:"deck_owner"`
	TotalCards       int                 `json:"total_cards"`
	Cards            []SessionCardOutput `json:"cards"`
	StartedAt        time.Time           `json:"started_at"`
	PerCardSeconds   int                 `json:"per_card_seconds"`
	TimeLimitSeconds int                 `json:"time_limit_seconds"`
	EndsAt           time.Time           `json:"ends_at"`
}

// RandomDeckOutput is a public deck suggested for a quick quiz.
type RandomDeckOutput struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Owner       string    `json:"owner"`
	CardCount   int       `json:"card_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnswerInput struct {
	CardID    int64  `json:"card_id"`
	Answer    string `json:"answer"`
	TimeTaken int    `json:"time_taken"`
}

type AnswerOutput struct {
	CardID        int64 `json:"card_id"`
	Correct       bool  `json:"correct"`
	AnsweredCount int   `json:"answered_count"`
	TotalCards    int   `json:"total_cards"`
}

type ResultAnswer struct {
	CardID    int64  `json:"card_id"`
	Answer    string `json:"answer"`
	Correct   bool   `json:"correct"`
	TimeTaken int    `json:"time_taken,omitempty"`
}

type ResultOutput struct {
	SessionID      string         `json:"session_id"`
	DeckTitle      string         `json:"deck_title"`
	DeckOwner      string         `json:"deck_owner"`
	TotalCards     int            `json:"total_cards"`
	CorrectAnswers int            `json:"correct_answers"`
	Accuracy       float64        `json:"accuracy"`
	CompletedAt    time.Time      `json:"completed_at"`
	Answers        []ResultAnswer `json:"answers"`
}
