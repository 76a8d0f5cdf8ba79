package domain

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

const (
	QuestionMCQ     = "mcq"
	QuestionMatch   = "match"
	QuestionFillups = "fillups"
)

// MinMCQOptions is the smallest allowed option set for an mcq card.
const MinMCQOptions = 4

type Deck struct {
	ID          int64
	OwnerID     string
	Title       string
	Description string
	Tags        string
	Visibility  string
	CreatedAt   time.Time
}

// Card has no visibility of its own; access is gated entirely by the
// parent deck.
type Card struct {
	ID        int64
	DeckID    int64
	QType     string
	Question  string
	Answer    string
	Options   []string
	CreatedAt time.Time
}

// DeckSummary is a deck as it appears in listings, with the per-viewer
// liked/favourite flags resolved.
type DeckSummary struct {
	Deck
	OwnerEmail string
	CardCount  int
	LikeCount  int
	Liked      bool
	Favourite  bool
}

type ListScope int

const (
	// ScopeVisible covers every public deck plus the viewer's own.
	ScopeVisible ListScope = iota
	ScopeMine
	ScopePublic
)

type ListFilter struct {
	ViewerID string
	Scope    ListScope
	Search   string
	Tag      string
	Limit    int
	Offset   int
}
