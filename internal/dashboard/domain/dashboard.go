package domain

import "time"

// PopularDeck is a public deck ranked for the dashboard, with its
// aggregate counts already resolved.
type PopularDeck struct {
	ID          int64
	Title       string
	Description string
	Tags        string
	OwnerEmail  string
	CardCount   int
	LikeCount   int
	CreatedAt   time.Time
}

// Stats are the site-wide aggregates shown on the dashboard. Only
// public material counts toward deck and card totals.
type Stats struct {
	PublicDecks int
	PublicCards int
	ActiveUsers int
}

type RecentDeck struct {
	ID         int64
	Title      string
	OwnerEmail string
	CreatedAt  time.Time
}
