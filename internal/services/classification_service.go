package services

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"lexitag/internal/models"
	"lexitag/pkg/classifier"
)

// Filter values accepted by FilterResults.
const (
	FilterAll          = "all"
	FilterClassified   = "classified"
	FilterUnclassified = "unclassified"
)

// LabelCount is one entry of a classification distribution.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates a classified dataset.
type Summary struct {
	Total        int          `json:"total"`
	Classified   int          `json:"classified"`
	Unclassified int          `json:"unclassified"`
	Distribution []LabelCount `json:"distribution"`
}

// ClassificationService runs the classifier over datasets using the current
// dictionary.
type ClassificationService struct {
	dict *DictionaryService
}

func NewClassificationService(dict *DictionaryService) *ClassificationService {
	return &ClassificationService{dict: dict}
}

// ClassifyText labels a single text value. An empty dictionary is a user
// error.
func (s *ClassificationService) ClassifyText(ctx context.Context, text string) (string, error) {
	snapshot, err := s.snapshotNonEmpty(ctx)
	if err != nil {
		return "", err
	}
	return classifier.Classify(text, snapshot), nil
}

// ClassifyDataset labels every row of the dataset by the given text column
// and returns a new dataset with a classification column appended. Row
// order and all original columns are preserved; re-classifying a dataset
// that already has a classification column replaces its values in place.
func (s *ClassificationService) ClassifyDataset(ctx context.Context, ds *models.Dataset, column string) (*models.Dataset, error) {
	snapshot, err := s.snapshotNonEmpty(ctx)
	if err != nil {
		return nil, err
	}
	textIdx := ds.ColumnIndex(column)
	if textIdx < 0 {
		return nil, fmt.Errorf("column %q: %w", column, models.ErrUnknownColumn)
	}

	labelIdx := ds.ColumnIndex(models.ClassificationColumn)
	header := ds.Header
	if labelIdx < 0 {
		header = append(append([]string{}, ds.Header...), models.ClassificationColumn)
		labelIdx = len(header) - 1
	}

	rows := make([][]string, len(ds.Rows))
	for i, row := range ds.Rows {
		label := classifier.Classify(row[textIdx], snapshot)
		out := make([]string, len(header))
		copy(out, row)
		out[labelIdx] = label
		rows[i] = out
	}

	log.WithFields(log.Fields{
		"dataset":    ds.Name,
		"column":     column,
		"rows":       len(rows),
		"categories": len(snapshot),
	}).Info("dataset classified")

	return &models.Dataset{Name: ds.Name, Header: header, Rows: rows}, nil
}

// FilterResults narrows a classified dataset: "all", "classified",
// "unclassified", or a category name (rows whose label contains that
// category).
func (s *ClassificationService) FilterResults(ds *models.Dataset, filter string) (*models.Dataset, error) {
	labelIdx := ds.ColumnIndex(models.ClassificationColumn)
	if labelIdx < 0 {
		return nil, models.ErrNotClassified
	}
	if filter == "" || filter == FilterAll {
		return ds, nil
	}

	keep := func(label string) bool {
		switch filter {
		case FilterClassified:
			return classifier.IsClassified(label)
		case FilterUnclassified:
			return !classifier.IsClassified(label)
		default:
			return classifier.HasCategory(label, filter)
		}
	}

	filtered := &models.Dataset{Name: ds.Name, Header: ds.Header}
	for _, row := range ds.Rows {
		if keep(row[labelIdx]) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}

// Summarize counts classification outcomes of a classified dataset. The
// distribution is ordered by descending count, ties by label.
func (s *ClassificationService) Summarize(ds *models.Dataset) (*Summary, error) {
	labelIdx := ds.ColumnIndex(models.ClassificationColumn)
	if labelIdx < 0 {
		return nil, models.ErrNotClassified
	}

	counts := make(map[string]int)
	summary := &Summary{Total: len(ds.Rows)}
	for _, row := range ds.Rows {
		label := row[labelIdx]
		counts[label]++
		if classifier.IsClassified(label) {
			summary.Classified++
		} else {
			summary.Unclassified++
		}
	}

	summary.Distribution = make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		summary.Distribution = append(summary.Distribution, LabelCount{Label: label, Count: count})
	}
	sort.Slice(summary.Distribution, func(i, j int) bool {
		a, b := summary.Distribution[i], summary.Distribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Label < b.Label
	})
	return summary, nil
}

func (s *ClassificationService) snapshotNonEmpty(ctx context.Context) ([]classifier.Category, error) {
	snapshot, err := s.dict.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, models.ErrEmptyDictionary
	}
	return snapshot, nil
}
