package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokul-1998/flashdeck-service/internal/deck/domain"
)

// PgxIface is the slice of pgxpool.Pool the repository uses; pgxmock
// satisfies it in tests.
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

func (r *PostgresRepository) Create(ctx context.Context, deck *domain.Deck) error {
	query := `
		INSERT INTO decks (owner_id, title, description, tags, visibility)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		deck.OwnerID, deck.Title, deck.Description, deck.Tags, deck.Visibility).
		Scan(&deck.ID, &deck.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Deck, error) {
	query := `
		SELECT id, owner_id, title, COALESCE(description, ''), COALESCE(tags, ''), visibility, created_at
		FROM decks
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var deck domain.Deck
	err := row.Scan(&deck.ID, &deck.OwnerID, &deck.Title, &deck.Description, &deck.Tags, &deck.Visibility, &deck.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	return &deck, nil
}

func (r *PostgresRepository) GetOwnerEmail(ctx context.Context, deckID int64) (string, error) {
	query := `
		SELECT u.email
		FROM decks d
		JOIN users u ON u.id = d.owner_id
		WHERE d.id = $1
	`
	var email string
	if err := r.db.QueryRow(ctx, query, deckID).Scan(&email); err != nil {
		return "", fmt.Errorf("failed to get deck owner: %w", err)
	}

	return email, nil
}

func (r *PostgresRepository) Update(ctx context.Context, deck *domain.Deck) error {
	_, err := r.db.Exec(ctx, `
		UPDATE decks
		SET title = $2, description = NULLIF($3, ''), tags = NULLIF($4, ''), visibility = $5
		WHERE id = $1
	`, deck.ID, deck.Title, deck.Description, deck.Tags, deck.Visibility)

	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM decks WHERE id = $1`, id)
	return err
}

// List filters by scope, search term and tag, counts the full match set,
// then fetches one page ordered by like count and recency.
func (r *PostgresRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.DeckSummary, int, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	switch f.Scope {
	case domain.ScopeMine:
		conds = append(conds, fmt.Sprintf("d.owner_id = $%d", arg(f.ViewerID)))
	case domain.ScopePublic:
		conds = append(conds, "d.visibility = 'public'")
	default:
		conds = append(conds, fmt.Sprintf("(d.visibility = 'public' OR d.owner_id = $%d)", arg(f.ViewerID)))
	}

	if f.Search != "" {
		n := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(d.title ILIKE $%d OR d.description ILIKE $%d OR d.tags ILIKE $%d)", n, n, n))
	}
	if f.Tag != "" {
		conds = append(conds, fmt.Sprintf("d.tags ILIKE $%d", arg("%"+f.Tag+"%")))
	}

	where := strings.Join(conds, " AND ")

	var total int
	countQuery := "SELECT count(*) FROM decks d WHERE " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count decks: %w", err)
	}

	viewer := arg(f.ViewerID)
	limit := arg(f.Limit)
	offset := arg(f.Offset)

	query := fmt.Sprintf(`
		SELECT d.id, d.owner_id, u.email, d.title, COALESCE(d.description, ''), COALESCE(d.tags, ''),
		       d.visibility, d.created_at,
		       (SELECT count(*) FROM cards c WHERE c.deck_id = d.id) AS card_count,
		       (SELECT count(*) FROM deck_likes l WHERE l.deck_id = d.id) AS like_count,
		       EXISTS (SELECT 1 FROM deck_likes l WHERE l.deck_id = d.id AND l.user_id = $%d) AS liked,
		       EXISTS (SELECT 1 FROM deck_favourites fav WHERE fav.deck_id = d.id AND fav.user_id = $%d) AS favourite
		FROM decks d
		JOIN users u ON u.id = d.owner_id
		WHERE %s
		ORDER BY like_count DESC, d.created_at DESC
		LIMIT $%d OFFSET $%d
	`, viewer, viewer, where, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var summaries []domain.DeckSummary
	for rows.Next() {
		var s domain.DeckSummary
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.OwnerEmail, &s.Title, &s.Description, &s.Tags,
			&s.Visibility, &s.CreatedAt, &s.CardCount, &s.LikeCount, &s.Liked, &s.Favourite); err != nil {
			return nil, 0, fmt.Errorf("failed to scan deck row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read deck rows: %w", err)
	}

	return summaries, total, nil
}

func (r *PostgresRepository) RandomPublicDeck(ctx context.Context, tag string) (*domain.DeckSummary, error) {
	query := `
		SELECT d.id, d.owner_id, u.email, d.title, COALESCE(d.description, ''), COALESCE(d.tags, ''),
		       d.visibility, d.created_at,
		       (SELECT count(*) FROM cards c WHERE c.deck_id = d.id) AS card_count,
		       (SELECT count(*) FROM deck_likes l WHERE l.deck_id = d.id) AS like_count
		FROM decks d
		JOIN users u ON u.id = d.owner_id
		WHERE d.visibility = 'public' AND ($1 = '' OR d.tags ILIKE $2)
		ORDER BY random()
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, tag, "%"+tag+"%")

	var s domain.DeckSummary
	err := row.Scan(&s.ID, &s.OwnerID, &s.OwnerEmail, &s.Title, &s.Description, &s.Tags,
		&s.Visibility, &s.CreatedAt, &s.CardCount, &s.LikeCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pick random deck: %w", err)
	}

	return &s, nil
}

func (r *PostgresRepository) AddFavourite(ctx context.Context, userID string, deckID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO deck_favourites (user_id, deck_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, deckID)

	return err
}

func (r *PostgresRepository) RemoveFavourite(ctx context.Context, userID string, deckID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM deck_favourites WHERE user_id = $1 AND deck_id = $2
	`, userID, deckID)

	return err
}

func (r *PostgresRepository) AddLike(ctx context.Context, userID string, deckID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO deck_likes (user_id, deck_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, deckID)

	return err
}

func (r *PostgresRepository) RemoveLike(ctx context.Context, userID string, deckID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM deck_likes WHERE user_id = $1 AND deck_id = $2
	`, userID, deckID)

	return err
}

func (r *PostgresRepository) CreateCard(ctx context.Context, card *domain.Card) error {
	query := `
		INSERT INTO cards (deck_id, qtype, question, answer, options)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		card.DeckID, card.QType, card.Question, card.Answer, card.Options).
		Scan(&card.ID, &card.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetCard(ctx context.Context, deckID, cardID int64) (*domain.Card, error) {
	query := `
		SELECT id, deck_id, qtype, question, answer, options, created_at
		FROM cards
		WHERE deck_id = $1 AND id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, deckID, cardID)

	var card domain.Card
	err := row.Scan(&card.ID, &card.DeckID, &card.QType, &card.Question, &card.Answer, &card.Options, &card.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &card, nil
}

func (r *PostgresRepository) ListCards(ctx context.Context, deckID int64) ([]domain.Card, error) {
	query := `
		SELECT id, deck_id, qtype, question, answer, options, created_at
		FROM cards
		WHERE deck_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(&card.ID, &card.DeckID, &card.QType, &card.Question, &card.Answer, &card.Options, &card.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read card rows: %w", err)
	}

	return cards, nil
}

func (r *PostgresRepository) UpdateCard(ctx context.Context, card *domain.Card) error {
	_, err := r.db.Exec(ctx, `
		UPDATE cards
		SET question = $3, answer = $4, options = $5
		WHERE deck_id = $1 AND id = $2
	`, card.DeckID, card.ID, card.Question, card.Answer, card.Options)

	return err
}

func (r *PostgresRepository) DeleteCard(ctx context.Context, deckID, cardID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cards WHERE deck_id = $1 AND id = $2`, deckID, cardID)
	return err
}
