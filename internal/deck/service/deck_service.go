package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gokul-1998/flashdeck-service/internal/deck/domain"
	"github.com/gokul-1998/flashdeck-service/internal/deck/dto"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

const defaultPageSize = 10

type DeckService struct {
	repo        domain.DeckRepository
	maxPageSize int
}

func NewDeckService(repo domain.DeckRepository, maxPageSize int) *DeckService {
	return &DeckService{
		repo:        repo,
		maxPageSize: maxPageSize,
	}
}

func (s *DeckService) Create(ctx context.Context, ownerID string, input dto.DeckCreateInput) (*domain.Deck, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}
	if visibility != domain.VisibilityPublic && visibility != domain.VisibilityPrivate {
		return nil, fmt.Errorf("%w: visibility must be public or private", apperrors.ErrValidation)
	}

	deck := &domain.Deck{
		OwnerID:     ownerID,
		Title:       title,
		Description: input.Description,
		Tags:        input.Tags,
		Visibility:  visibility,
	}

	if err := s.repo.Create(ctx, deck); err != nil {
		return nil, err
	}

	return deck, nil
}

func (s *DeckService) Get(ctx context.Context, viewerID string, id int64) (*domain.Deck, error) {
	return s.visibleDeck(ctx, viewerID, id)
}

func (s *DeckService) OwnerEmail(ctx context.Context, deckID int64) (string, error) {
	return s.repo.GetOwnerEmail(ctx, deckID)
}

func (s *DeckService) Update(ctx context.Context, viewerID string, id int64, input dto.DeckUpdateInput) (*domain.Deck, error) {
	deck, err := s.ownedDeck(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
		}
		deck.Title = title
	}
	if input.Description != nil {
		deck.Description = *input.Description
	}
	if input.Tags != nil {
		deck.Tags = *input.Tags
	}
	if input.Visibility != nil {
		if *input.Visibility != domain.VisibilityPublic && *input.Visibility != domain.VisibilityPrivate {
			return nil, fmt.Errorf("%w: visibility must be public or private", apperrors.ErrValidation)
		}
		deck.Visibility = *input.Visibility
	}

	if err := s.repo.Update(ctx, deck); err != nil {
		return nil, err
	}

	return deck, nil
}

func (s *DeckService) Delete(ctx context.Context, viewerID string, id int64) error {
	if _, err := s.ownedDeck(ctx, viewerID, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// List returns one page of decks visible under the given scope. Page and
// size must be positive; an oversized page size is clamped, not rejected.
func (s *DeckService) List(ctx context.Context, viewerID string, scope domain.ListScope, query dto.ListQuery) (*dto.DeckPage, error) {
	page := query.Page
	if page == 0 {
		page = 1
	}
	size := query.Size
	if size == 0 {
		size = defaultPageSize
	}
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("%w: page and size must be positive", apperrors.ErrValidation)
	}
	if size > s.maxPageSize {
		size = s.maxPageSize
	}

	filter := domain.ListFilter{
		ViewerID: viewerID,
		Scope:    scope,
		Search:   query.Search,
		Tag:      query.Tag,
		Limit:    size,
		Offset:   (page - 1) * size,
	}

	summaries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DeckListItem, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, dto.DeckListItem{
			DeckOutput: dto.DeckOutput{
				ID:          sum.ID,
				Title:       sum.Title,
				Description: sum.Description,
				Tags:        sum.Tags,
				Visibility:  sum.Visibility,
				OwnerID:     sum.OwnerID,
				CreatedAt:   sum.CreatedAt,
			},
			OwnerEmail: sum.OwnerEmail,
			CardCount:  sum.CardCount,
			LikeCount:  sum.LikeCount,
			Liked:      sum.Liked,
			Favourite:  sum.Favourite,
		})
	}

	return &dto.DeckPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: (total + size - 1) / size,
	}, nil
}

// RandomPublicDeck suggests one public deck to quiz against, optionally
// narrowed to a tag. Public decks require no viewer check.
func (s *DeckService) RandomPublicDeck(ctx context.Context, tag string) (*domain.DeckSummary, error) {
	deck, err := s.repo.RandomPublicDeck(ctx, tag)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, apperrors.ErrDeckNotFound
	}

	return deck, nil
}

func (s *DeckService) Favourite(ctx context.Context, viewerID string, deckID int64) error {
	if _, err := s.visibleDeck(ctx, viewerID, deckID); err != nil {
		return err
	}

	return s.repo.AddFavourite(ctx, viewerID, deckID)
}

func (s *DeckService) Unfavourite(ctx context.Context, viewerID string, deckID int64) error {
	if _, err := s.visibleDeck(ctx, viewerID, deckID); err != nil {
		return err
	}

	return s.repo.RemoveFavourite(ctx, viewerID, deckID)
}

func (s *DeckService) Like(ctx context.Context, viewerID string, deckID int64) error {
	if _, err := s.visibleDeck(ctx, viewerID, deckID); err != nil {
		return err
	}

	return s.repo.AddLike(ctx, viewerID, deckID)
}

func (s *DeckService) Unlike(ctx context.Context, viewerID string, deckID int64) error {
	if _, err := s.visibleDeck(ctx, viewerID, deckID); err != nil {
		return err
	}

	return s.repo.RemoveLike(ctx, viewerID, deckID)
}

// visibleDeck enforces the read rule: owner or public. Absent and
// forbidden are deliberately indistinguishable so private decks do not
// leak their existence.
func (s *DeckService) visibleDeck(ctx context.Context, viewerID string, id int64) (*domain.Deck, error) {
	deck, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deck == nil || (deck.Visibility != domain.VisibilityPublic && deck.OwnerID != viewerID) {
		return nil, apperrors.ErrDeckNotFound
	}

	return deck, nil
}

// ownedDeck enforces the write rule: only the owner may mutate. A public
// deck owned by someone else is visible, so the rejection is a 403; a
// private one stays a 404.
func (s *DeckService) ownedDeck(ctx context.Context, viewerID string, id int64) (*domain.Deck, error) {
	deck, err := s.visibleDeck(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}
	if deck.OwnerID != viewerID {
		return nil, apperrors.ErrForbidden
	}

	return deck, nil
}
