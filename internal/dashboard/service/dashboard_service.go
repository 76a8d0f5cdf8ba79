package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	authdomain "github.com/gokul-1998/flashdeck-service/internal/auth/domain"
	"github.com/gokul-1998/flashdeck-service/internal/dashboard/domain"
	"github.com/gokul-1998/flashdeck-service/internal/dashboard/dto"
)

const (
	popularDeckLimit    = 10
	popularSubjectLimit = 10
	recentActivityLimit = 5
)

type DashboardService struct {
	repo domain.DashboardRepository
}

func NewDashboardService(repo domain.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Overview assembles the landing-page payload: most liked public decks,
// site-wide stats, trending subjects and the latest public activity.
func (s *DashboardService) Overview(ctx context.Context, viewer *authdomain.User) (*dto.Overview, error) {
	popular, err := s.repo.PopularDecks(ctx, popularDeckLimit)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := s.repo.PublicDeckTags(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentDecks(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.Overview{
		PopularDecks: make([]dto.PopularDeck, 0, len(popular)),
		Stats: dto.Stats{
			TotalPublicDecks:    stats.PublicDecks,
			TotalCardsAvailable: stats.PublicCards,
			ActiveUsers:         stats.ActiveUsers,
			PopularSubjects:     popularSubjects(tags, popularSubjectLimit),
		},
		RecentActivities: make([]dto.Activity, 0, len(recent)),
		UserInfo: dto.UserInfo{
			Username: viewer.Email,
			UserID:   viewer.ID,
		},
	}

	for _, deck := range popular {
		out.PopularDecks = append(out.PopularDecks, dto.PopularDeck{
			ID:          deck.ID,
			Title:       deck.Title,
			Description: deck.Description,
			Tags:        deck.Tags,
			Owner:       deck.OwnerEmail,
			CardCount:   deck.CardCount,
			LikeCount:   deck.LikeCount,
			CreatedAt:   deck.CreatedAt,
		})
	}

	for _, deck := range recent {
		out.RecentActivities = append(out.RecentActivities, dto.Activity{
			Type:      "deck_created",
			Message:   fmt.Sprintf("%s created deck '%s'", deck.OwnerEmail, deck.Title),
			Timestamp: deck.CreatedAt,
			DeckID:    deck.ID,
			User:      deck.OwnerEmail,
		})
	}

	return out, nil
}

// popularSubjects splits the comma-separated tags fields, normalises to
// lower case and returns the most frequent subjects, ties broken
// alphabetically so the ordering is stable.
func popularSubjects(tagFields []string, limit int) []dto.Subject {
	counts := make(map[string]int)
	for _, field := range tagFields {
		for _, tag := range strings.Split(field, ",") {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag != "" {
				counts[tag]++
			}
		}
	}

	subjects := make([]dto.Subject, 0, len(counts))
	for tag, count := range counts {
		subjects = append(subjects, dto.Subject{Subject: tag, Count: count})
	}
	sort.Slice(subjects, func(i, j int) bool {
		if subjects[i].Count != subjects[j].Count {
			return subjects[i].Count > subjects[j].Count
		}
		return subjects[i].Subject < subjects[j].Subject
	})

	if len(subjects) > limit {
		subjects = subjects[:limit]
	}

	return subjects
}
