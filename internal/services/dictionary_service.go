package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"lexitag/internal/models"
	"lexitag/internal/store"
	"lexitag/pkg/classifier"
)

// SeedCategories are the built-in categories every fresh dictionary starts
// with.
var SeedCategories = []models.Category{
	{
		Name: "urgency_marketing",
		Keywords: []string{
			"limited", "limited time", "limited run", "limited edition", "order now",
			"last chance", "hurry", "while supplies last", "before they're gone",
			"selling out", "selling fast", "act now", "don't wait", "today only",
			"expires soon", "final hours", "almost gone",
		},
	},
	{
		Name: "exclusive_marketing",
		Keywords: []string{
			"exclusive", "exclusively", "exclusive offer", "exclusive deal",
			"members only", "vip", "special access", "invitation only",
			"premium", "privileged", "limited access", "select customers",
			"insider", "private sale", "early access",
		},
	},
}

// DictionaryService validates and applies category edits on top of a
// DictionaryStore.
type DictionaryService struct {
	store store.DictionaryStore
}

func NewDictionaryService(ds store.DictionaryStore) *DictionaryService {
	return &DictionaryService{store: ds}
}

// Seed inserts the built-in categories. Intended for fresh stores at
// session start.
func (s *DictionaryService) Seed(ctx context.Context) error {
	for _, cat := range SeedCategories {
		if err := s.store.AddCategory(ctx, cat.Name, cat.Keywords); err != nil {
			return fmt.Errorf("seed category %q: %w", cat.Name, err)
		}
	}
	return nil
}

// AddCategory inserts a category after validation, silently overwriting an
// existing name. Keywords are trimmed and empty entries discarded; an empty
// name or an effectively empty keyword set is a validation error and leaves
// the store unchanged.
func (s *DictionaryService) AddCategory(ctx context.Context, name string, keywords []string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", models.ErrValidation)
	}
	cleaned := normalizeKeywords(keywords)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("category %q needs at least one keyword: %w", name, models.ErrValidation)
	}

	if err := s.store.AddCategory(ctx, name, cleaned); err != nil {
		return nil, fmt.Errorf("add category %q: %w", name, err)
	}
	log.WithFields(log.Fields{"category": name, "keywords": len(cleaned)}).Debug("category added")
	return &models.Category{Name: name, Keywords: cleaned}, nil
}

// UpdateCategory replaces a category's keyword set under the same
// validation rules as AddCategory. An absent name is created implicitly.
func (s *DictionaryService) UpdateCategory(ctx context.Context, name string, keywords []string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", models.ErrValidation)
	}
	cleaned := normalizeKeywords(keywords)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("category %q needs at least one keyword: %w", name, models.ErrValidation)
	}

	if err := s.store.UpdateCategory(ctx, name, cleaned); err != nil {
		return nil, fmt.Errorf("update category %q: %w", name, err)
	}
	log.WithFields(log.Fields{"category": name, "keywords": len(cleaned)}).Debug("category updated")
	return &models.Category{Name: name, Keywords: cleaned}, nil
}

// DeleteCategory removes a category. Deleting an absent name is a no-op.
func (s *DictionaryService) DeleteCategory(ctx context.Context, name string) error {
	if err := s.store.DeleteCategory(ctx, name); err != nil {
		return fmt.Errorf("delete category %q: %w", name, err)
	}
	log.WithField("category", name).Debug("category deleted")
	return nil
}

// GetCategory fetches one category. Absent names map to models.ErrNotFound.
func (s *DictionaryService) GetCategory(ctx context.Context, name string) (*models.Category, error) {
	cat, err := s.store.GetCategory(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("category %q: %w", name, models.ErrNotFound)
		}
		return nil, err
	}
	return cat, nil
}

// ListCategories returns all categories in insertion order.
func (s *DictionaryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// Count returns the number of categories.
func (s *DictionaryService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Snapshot converts the current dictionary into the classifier's input
// form, preserving insertion order.
func (s *DictionaryService) Snapshot(ctx context.Context) ([]classifier.Category, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot dictionary: %w", err)
	}
	snapshot := make([]classifier.Category, len(cats))
	for i, cat := range cats {
		snapshot[i] = classifier.Category{Name: cat.Name, Keywords: cat.Keywords}
	}
	return snapshot, nil
}

// normalizeKeywords trims each entry, splits embedded newlines, drops
// empties, and removes duplicates keeping first occurrence.
func normalizeKeywords(keywords []string) []string {
	return classifier.ParseKeywords(strings.Join(keywords, "\n"))
}
