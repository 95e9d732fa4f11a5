// Package sqlite implements the dictionary store on an in-memory SQLite
// database. Insertion order is kept through an explicit position column.
// The database lives and dies with the process, so session-only semantics
// are unchanged from the memory backend.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"lexitag/internal/models"
	"lexitag/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	name     TEXT PRIMARY KEY,
	keywords TEXT NOT NULL,
	position INTEGER NOT NULL
);`

type Store struct {
	db *sql.DB
}

// New opens a dictionary store backed by SQLite. An empty dsn selects an
// in-memory database.
func New(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// A :memory: database exists per connection; keep the pool at one so
	// every statement sees the same database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create categories table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) AddCategory(ctx context.Context, name string, keywords []string) error {
	encoded, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("encode keywords for %q: %w", name, err)
	}

	// Overwrite keeps the original position; a new name takes the next one.
	query := `
		INSERT INTO categories (name, keywords, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM categories))
		ON CONFLICT(name) DO UPDATE SET keywords = excluded.keywords`
	if _, err := s.db.ExecContext(ctx, query, name, string(encoded)); err != nil {
		return fmt.Errorf("upsert category %q: %w", name, err)
	}
	return nil
}

// UpdateCategory behaves like AddCategory: an absent name is created.
func (s *Store) UpdateCategory(ctx context.Context, name string, keywords []string) error {
	return s.AddCategory(ctx, name, keywords)
}

func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete category %q: %w", name, err)
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, name string) (*models.Category, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx,
		`SELECT keywords FROM categories WHERE name = ?`, name).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category %q: %w", name, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", name, err)
	}
	return decodeCategory(name, encoded)
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, keywords FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var name, encoded string
		if err := rows.Scan(&name, &encoded); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		cat, err := decodeCategory(name, encoded)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func decodeCategory(name, encoded string) (*models.Category, error) {
	var keywords []string
	if err := json.Unmarshal([]byte(encoded), &keywords); err != nil {
		return nil, fmt.Errorf("decode keywords for %q: %w", name, err)
	}
	return &models.Category{Name: name, Keywords: keywords}, nil
}
