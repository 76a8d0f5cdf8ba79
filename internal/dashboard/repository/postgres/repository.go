package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokul-1998/flashdeck-service/internal/dashboard/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) PopularDecks(ctx context.Context, limit int) ([]domain.PopularDeck, error) {
	query := `
		SELECT d.id, d.title, COALESCE(d.description, ''), COALESCE(d.tags, ''), u.email,
		       (SELECT count(*) FROM cards c WHERE c.deck_id = d.id) AS card_count,
		       (SELECT count(*) FROM deck_likes l WHERE l.deck_id = d.id) AS like_count,
		       d.created_at
		FROM decks d
		JOIN users u ON u.id = d.owner_id
		WHERE d.visibility = 'public'
		ORDER BY like_count DESC, d.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular decks: %w", err)
	}
	defer rows.Close()

	var decks []domain.PopularDeck
	for rows.Next() {
		var d domain.PopularDeck
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Tags, &d.OwnerEmail,
			&d.CardCount, &d.LikeCount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan popular deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read popular decks: %w", err)
	}

	return decks, nil
}

func (r *PostgresRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats

	query := `
		SELECT
			(SELECT count(*) FROM decks WHERE visibility = 'public'),
			(SELECT count(*) FROM cards c JOIN decks d ON d.id = c.deck_id WHERE d.visibility = 'public'),
			(SELECT count(*) FROM users)
	`
	if err := r.db.QueryRow(ctx, query).Scan(&stats.PublicDecks, &stats.PublicCards, &stats.ActiveUsers); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return stats, nil
}

func (r *PostgresRepository) PublicDeckTags(ctx context.Context) ([]string, error) {
	query := `
		SELECT tags
		FROM decks
		WHERE visibility = 'public' AND tags IS NOT NULL
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deck tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan deck tags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck tags: %w", err)
	}

	return tags, nil
}

func (r *PostgresRepository) RecentDecks(ctx context.Context, limit int) ([]domain.RecentDeck, error) {
	query := `
		SELECT d.id, d.title, u.email, d.created_at
		FROM decks d
		JOIN users u ON u.id = d.owner_id
		WHERE d.visibility = 'public'
		ORDER BY d.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent decks: %w", err)
	}
	defer rows.Close()

	var decks []domain.RecentDeck
	for rows.Next() {
		var d domain.RecentDeck
		if err := rows.Scan(&d.ID, &d.Title, &d.OwnerEmail, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent decks: %w", err)
	}

	return decks, nil
}
