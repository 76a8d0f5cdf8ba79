package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/gokul-1998/flashdeck-service/internal/dashboard/repository/postgres"
)

func TestPopularDecks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	columns := []string{"id", "title", "description", "tags", "email", "card_count", "like_count", "created_at"}

	mock.ExpectQuery("SELECT d.id, d.title").
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(7), "Spanish 101", "", "lang", "owner@example.com", 12, 5, now).
			AddRow(int64(8), "History", "dates", "", "other@example.com", 3, 1, now))

	decks, err := r.PopularDecks(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, int64(7), decks[0].ID)
	assert.Equal(t, 5, decks[0].LikeCount)
	assert.Equal(t, "other@example.com", decks[1].OwnerEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT").
		WillReturnRows(pgxmock.NewRows([]string{"decks", "cards", "users"}).AddRow(4, 40, 9))

	stats, err := r.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.PublicDecks)
	assert.Equal(t, 40, stats.PublicCards)
	assert.Equal(t, 9, stats.ActiveUsers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicDeckTags(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT tags").
		WillReturnRows(pgxmock.NewRows([]string{"tags"}).AddRow("lang,spanish").AddRow("history"))

	tags, err := r.PublicDeckTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"lang,spanish", "history"}, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentDecks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT d.id, d.title").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "email", "created_at"}).
			AddRow(int64(7), "Spanish 101", "owner@example.com", now))

	decks, err := r.RecentDecks(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, decks, 1)
	assert.Equal(t, "owner@example.com", decks[0].OwnerEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
