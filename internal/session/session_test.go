package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexitag/internal/models"
	"lexitag/internal/session"
	"lexitag/internal/store"
	"lexitag/internal/store/memory"
)

func memoryFactory(ctx context.Context) (store.DictionaryStore, error) {
	return memory.New(), nil
}

func TestCreateSeedsDictionary(t *testing.T) {
	m := session.NewManager(time.Minute, memoryFactory, true)

	sess, err := m.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)

	cats, err := sess.Dict.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "urgency_marketing", cats[0].Name)
}

func TestCreateWithoutSeed(t *testing.T) {
	m := session.NewManager(time.Minute, memoryFactory, false)

	sess, err := m.Create(context.Background())
	require.NoError(t, err)

	n, err := sess.Dict.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetUnknownSession(t *testing.T) {
	m := session.NewManager(time.Minute, memoryFactory, true)

	_, err := m.Get("no-such-id")
	assert.ErrorIs(t, err, models.ErrSessionExpired)
}

func TestGetResolvesCreatedSession(t *testing.T) {
	m := session.NewManager(time.Minute, memoryFactory, true)

	created, err := m.Create(context.Background())
	require.NoError(t, err)

	got, err := m.Get(created.ID)
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Equal(t, 1, m.Count())
}

func TestDatasetLifecycle(t *testing.T) {
	m := session.NewManager(time.Minute, memoryFactory, true)
	sess, err := m.Create(context.Background())
	require.NoError(t, err)

	_, err = sess.Dataset()
	assert.ErrorIs(t, err, models.ErrNoDataset)
	_, err = sess.Classified()
	assert.ErrorIs(t, err, models.ErrNotClassified)

	ds := &models.Dataset{Header: []string{"text"}, Rows: [][]string{{"hi"}}}
	sess.SetDataset(ds)

	got, err := sess.Dataset()
	require.NoError(t, err)
	assert.Same(t, ds, got)

	labeled := &models.Dataset{Header: []string{"text", "classification"}}
	sess.SetClassified(labeled, "text")
	gotLabeled, err := sess.Classified()
	require.NoError(t, err)
	assert.Same(t, labeled, gotLabeled)
	assert.Equal(t, "text", sess.Column())

	// A new upload drops the old classification.
	sess.SetDataset(ds)
	_, err = sess.Classified()
	assert.ErrorIs(t, err, models.ErrNotClassified)
}
