package dictfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexitag/internal/dictfile"
	"lexitag/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")

	cats := []models.Category{
		{Name: "urgency_marketing", Keywords: []string{"hurry", "act now"}},
		{Name: "exclusive_marketing", Keywords: []string{"vip"}},
	}
	require.NoError(t, dictfile.Save(path, cats))

	loaded, err := dictfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cats, loaded)
}

func TestLoadPreservesFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	content := `categories:
  - name: zulu
    keywords: [z]
  - name: alpha
    keywords: [a]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cats, err := dictfile.Load(path)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "zulu", cats[0].Name)
	assert.Equal(t, "alpha", cats[1].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dictfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0o644))

	_, err := dictfile.Load(path)
	assert.Error(t, err)
}
