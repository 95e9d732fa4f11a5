package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexitag/internal/models"
	"lexitag/internal/services"
	"lexitag/internal/store/memory"
	"lexitag/pkg/classifier"
)

func newClassificationFixture(t *testing.T) (*services.DictionaryService, *services.ClassificationService) {
	t.Helper()
	dict := services.NewDictionaryService(memory.New())
	ctx := context.Background()
	_, err := dict.AddCategory(ctx, "urgency_marketing", []string{"hurry", "act now"})
	require.NoError(t, err)
	_, err = dict.AddCategory(ctx, "exclusive_marketing", []string{"vip"})
	require.NoError(t, err)
	return dict, services.NewClassificationService(dict)
}

func messageDataset() *models.Dataset {
	return &models.Dataset{
		Name:   "ads.csv",
		Header: []string{"id", "message"},
		Rows: [][]string{
			{"1", "Act now, VIP members get early access"},
			{"2", "Plain product description"},
			{"3", "Hurry before it's over"},
		},
	}
}

func TestClassifyText(t *testing.T) {
	_, svc := newClassificationFixture(t)

	label, err := svc.ClassifyText(context.Background(), "Act now, VIP members get early access")
	require.NoError(t, err)
	assert.Equal(t, "urgency_marketing, exclusive_marketing", label)
}

func TestClassifyTextEmptyDictionary(t *testing.T) {
	svc := services.NewClassificationService(services.NewDictionaryService(memory.New()))

	_, err := svc.ClassifyText(context.Background(), "anything")
	assert.ErrorIs(t, err, models.ErrEmptyDictionary)
}

func TestClassifyDataset(t *testing.T) {
	_, svc := newClassificationFixture(t)

	out, err := svc.ClassifyDataset(context.Background(), messageDataset(), "message")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "message", "classification"}, out.Header)
	require.Equal(t, 3, out.RowCount())
	assert.Equal(t, "urgency_marketing, exclusive_marketing", out.Rows[0][2])
	assert.Equal(t, classifier.Unclassified, out.Rows[1][2])
	assert.Equal(t, "urgency_marketing", out.Rows[2][2])

	// Original columns and row order are untouched.
	assert.Equal(t, "1", out.Rows[0][0])
	assert.Equal(t, "Plain product description", out.Rows[1][1])
}

func TestClassifyDatasetDoesNotMutateInput(t *testing.T) {
	_, svc := newClassificationFixture(t)

	ds := messageDataset()
	_, err := svc.ClassifyDataset(context.Background(), ds, "message")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "message"}, ds.Header)
	assert.Len(t, ds.Rows[0], 2)
}

func TestReclassifyReplacesLabels(t *testing.T) {
	dict, svc := newClassificationFixture(t)
	ctx := context.Background()

	out, err := svc.ClassifyDataset(ctx, messageDataset(), "message")
	require.NoError(t, err)

	require.NoError(t, dict.DeleteCategory(ctx, "exclusive_marketing"))

	again, err := svc.ClassifyDataset(ctx, out, "message")
	require.NoError(t, err)
	assert.Equal(t, out.Header, again.Header)
	assert.Equal(t, "urgency_marketing", again.Rows[0][2])
}

func TestClassifyDatasetUnknownColumn(t *testing.T) {
	_, svc := newClassificationFixture(t)

	_, err := svc.ClassifyDataset(context.Background(), messageDataset(), "missing")
	assert.ErrorIs(t, err, models.ErrUnknownColumn)
}

func TestClassifyDatasetEmptyDictionary(t *testing.T) {
	svc := services.NewClassificationService(services.NewDictionaryService(memory.New()))

	_, err := svc.ClassifyDataset(context.Background(), messageDataset(), "message")
	assert.ErrorIs(t, err, models.ErrEmptyDictionary)
}

func TestFilterResults(t *testing.T) {
	_, svc := newClassificationFixture(t)

	out, err := svc.ClassifyDataset(context.Background(), messageDataset(), "message")
	require.NoError(t, err)

	all, err := svc.FilterResults(out, services.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 3, all.RowCount())

	classified, err := svc.FilterResults(out, services.FilterClassified)
	require.NoError(t, err)
	assert.Equal(t, 2, classified.RowCount())

	unclassified, err := svc.FilterResults(out, services.FilterUnclassified)
	require.NoError(t, err)
	require.Equal(t, 1, unclassified.RowCount())
	assert.Equal(t, "2", unclassified.Rows[0][0])

	byCategory, err := svc.FilterResults(out, "exclusive_marketing")
	require.NoError(t, err)
	require.Equal(t, 1, byCategory.RowCount())
	assert.Equal(t, "1", byCategory.Rows[0][0])
}

func TestFilterResultsRequiresClassification(t *testing.T) {
	_, svc := newClassificationFixture(t)

	_, err := svc.FilterResults(messageDataset(), services.FilterAll)
	assert.ErrorIs(t, err, models.ErrNotClassified)
}

func TestSummarize(t *testing.T) {
	_, svc := newClassificationFixture(t)

	out, err := svc.ClassifyDataset(context.Background(), messageDataset(), "message")
	require.NoError(t, err)

	summary, err := svc.Summarize(out)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Classified)
	assert.Equal(t, 1, summary.Unclassified)
	require.Len(t, summary.Distribution, 3)
	for _, lc := range summary.Distribution {
		assert.Equal(t, 1, lc.Count)
	}
}

func TestSummarizeRequiresClassification(t *testing.T) {
	_, svc := newClassificationFixture(t)

	_, err := svc.Summarize(messageDataset())
	assert.ErrorIs(t, err, models.ErrNotClassified)
}
