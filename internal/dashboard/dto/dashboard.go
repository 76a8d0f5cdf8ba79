package dto

import "time"

type PopularDeck struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Owner       string    `json:"owner_username"`
	CardCount   int       `json:"card_count"`
	LikeCount   int       `json:"like_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Subject struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type Stats struct {
	TotalPublicDecks    int       `json:"total_public_decks"`
	TotalCardsAvailable int       `json:"total_cards_available"`
	ActiveUsers         int       `json:"active_users"`
	PopularSubjects     []Subject `json:"popular_subjects"`
}

type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	DeckID    int64     `json:"deck_id,omitempty"`
	User      string    `json:"user"`
}

type UserInfo struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

type Overview struct {
	PopularDecks     []PopularDeck `json:"popular_decks"`
	Stats            Stats         `json:"stats"`
	RecentActivities []Activity    `json:"recent_activities"`
	UserInfo         UserInfo      `json:"user_info"`
}
