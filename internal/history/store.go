package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/db"
)

// DefaultLimit is used by List when limit is not positive.
const DefaultLimit = 50

const timeLayout = "2006-01-02 15:04:05.000"

// Store persists generations.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record stores a generation and returns its ID. A missing ID is generated
// and a zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, g Generation) (string, error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	if g.Source == "" {
		g.Source = SourceAI
	}

	output, err := json.Marshal(g.Result)
	if err != nil {
		return "", fmt.Errorf("marshalling result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO generations (id, idea, style, audience, output_json, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Idea, g.Style, g.Audience, string(output), string(g.Source),
		g.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("inserting generation: %w", err)
	}
	return g.ID, nil
}

// Get returns a generation by ID, or nil if it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Generation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, idea, style, audience, output_json, source, created_at
		FROM generations WHERE id = ?`, id)

	g, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting generation %s: %w", id, err)
	}
	return g, nil
}

// List returns generations newest first.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Generation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, idea, style, audience, output_json, source, created_at
		FROM generations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning generation: %w", err)
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// Count returns the number of stored generations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM generations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting generations: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(sc scanner) (*Generation, error) {
	var (
		g       Generation
		output  string
		source  string
		created string
	)
	if err := sc.Scan(&g.ID, &g.Idea, &g.Style, &g.Audience, &output, &source, &created); err != nil {
		return nil, err
	}
	g.Source = Source(source)

	var res brand.Result
	if err := json.Unmarshal([]byte(output), &res); err != nil {
		return nil, fmt.Errorf("decoding stored result: %w", err)
	}
	g.Result = &res

	for _, layout := range []string{timeLayout, time.DateTime, time.RFC3339Nano} {
		if t, err := time.Parse(layout, created); err == nil {
			g.CreatedAt = t
			break
		}
	}
	return &g, nil
}
