package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_deck_repository.go -package=mocks github.com/gokul-1998/flashdeck-service/internal/deck/domain DeckRepository

type DeckRepository interface {
	// Create fills in the generated ID and CreatedAt.
	Create(ctx context.Context, deck *Deck) error
	// GetByID returns (nil, nil) when the deck does not exist.
	GetByID(ctx context.Context, id int64) (*Deck, error)
	GetOwnerEmail(ctx context.Context, deckID int64) (string, error)
	Update(ctx context.Context, deck *Deck) error
	Delete(ctx context.Context, id int64) error
	// List returns one page of matching decks plus the total match count
	// before pagination.
	List(ctx context.Context, filter ListFilter) ([]DeckSummary, int, error)
	// RandomPublicDeck picks one public deck at random, optionally
	// filtered by tag. Returns (nil, nil) when nothing matches.
	RandomPublicDeck(ctx context.Context, tag string) (*DeckSummary, error)

	AddFavourite(ctx context.Context, userID string, deckID int64) error
	RemoveFavourite(ctx context.Context, userID string, deckID int64) error
	AddLike(ctx context.Context, userID string, deckID int64) error
	RemoveLike(ctx context.Context, userID string, deckID int64) error

	CreateCard(ctx context.Context, card *Card) error
	// GetCard returns (nil, nil) when no such card exists in the deck.
	GetCard(ctx context.Context, deckID, cardID int64) (*Card, error)
	ListCards(ctx context.Context, deckID int64) ([]Card, error)
	UpdateCard(ctx context.Context, card *Card) error
	DeleteCard(ctx context.Context, deckID, cardID int64) error
}
