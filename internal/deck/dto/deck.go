package dto

import "time"

type DeckCreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Visibility  string `json:"visibility"`
}

type DeckUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	Visibility  *string `json:"visibility"`
}

type DeckOutput struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Visibility  string    `json:"visibility"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type DeckListItem struct {
	DeckOutput
	OwnerEmail string `json:"owner"`
	CardCount  int    `json:"card_count"`
	LikeCount  int    `json:"like_count"`
	Liked      bool   `json:"liked"`
	Favourite  bool   `json:"favourite"`
}

type ListQuery struct {
	Page   int    `query:"page"`
	Size   int    `query:"size"`
	Search string `query:"search"`
	Tag    string `query:"tag"`
}

// DeckPage carries one page of results plus the metadata emitted as
// X-Total-Count / X-Page / X-Page-Size / X-Total-Pages headers.
type DeckPage struct {
	Items      []DeckListItem
	Total      int
	Page       int
	Size       int
	TotalPages int
}
