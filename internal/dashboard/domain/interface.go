package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_dashboard_repository.go -package=mocks github.com/gokul-1998/flashdeck-service/internal/dashboard/domain DashboardRepository

type DashboardRepository interface {
	// PopularDecks returns up to limit public decks ordered by like
	// count, then recency.
	PopularDecks(ctx context.Context, limit int) ([]PopularDeck, error)
	Stats(ctx context.Context) (Stats, error)
	// PublicDeckTags returns the raw comma-separated tags field of every
	// tagged public deck; the service aggregates them into subjects.
	PublicDeckTags(ctx context.Context) ([]string, error)
	RecentDecks(ctx context.Context, limit int) ([]RecentDeck, error)
}
