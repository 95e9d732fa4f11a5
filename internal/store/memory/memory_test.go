package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexitag/internal/store"
	"lexitag/internal/store/memory"
)

func TestAddAndListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, s.AddCategory(ctx, "zeta", []string{"z"}))
	require.NoError(t, s.AddCategory(ctx, "alpha", []string{"a"}))
	require.NoError(t, s.AddCategory(ctx, "mid", []string{"m"}))

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "zeta", cats[0].Name)
	assert.Equal(t, "alpha", cats[1].Name)
	assert.Equal(t, "mid", cats[2].Name)
}

func TestOverwriteKeepsPosition(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, s.AddCategory(ctx, "first", []string{"one"}))
	require.NoError(t, s.AddCategory(ctx, "second", []string{"two"}))
	require.NoError(t, s.AddCategory(ctx, "first", []string{"uno", "eins"}))

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "first", cats[0].Name)
	assert.Equal(t, []string{"uno", "eins"}, cats[0].Keywords)
}

func TestUpdateCreatesWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, s.UpdateCategory(ctx, "fresh", []string{"new"}))

	cat, err := s.GetCategory(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, cat.Keywords)
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, s.AddCategory(ctx, "doomed", []string{"x"}))
	require.NoError(t, s.DeleteCategory(ctx, "doomed"))

	_, err := s.GetCategory(ctx, "doomed")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting an absent name is a no-op.
	assert.NoError(t, s.DeleteCategory(ctx, "doomed"))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, s.AddCategory(ctx, "stable", []string{"kw"}))

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	cats[0].Keywords[0] = "mutated"

	cat, err := s.GetCategory(ctx, "stable")
	require.NoError(t, err)
	assert.Equal(t, []string{"kw"}, cat.Keywords)
}

func TestGetAbsent(t *testing.T) {
	s := memory.New()
	_, err := s.GetCategory(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
