package store

import (
	"context"

	"lexitag/internal/models"
)

// DictionaryStore holds one session's category dictionary in insertion
// order. Implementations live at most as long as the session or process;
// nothing is durable across sessions.
//
// Contract notes:
//   - AddCategory overwrites silently when the name already exists, keeping
//     the category's original insertion position.
//   - UpdateCategory on an absent name creates it (see DESIGN.md).
//   - DeleteCategory on an absent name is a no-op.
//   - ListCategories returns a snapshot; callers may range over it any
//     number of times without side effects.
type DictionaryStore interface {
	AddCategory(ctx context.Context, name string, keywords []string) error
	UpdateCategory(ctx context.Context, name string, keywords []string) error
	DeleteCategory(ctx context.Context, name string) error
	GetCategory(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
