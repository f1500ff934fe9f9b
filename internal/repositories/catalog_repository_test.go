package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/repositories"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "city_catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogLookup(t *testing.T) {
	path := writeCatalog(t, `{"Lima": ["url-a", "url-b"]}`)

	repo, err := repositories.NewCatalogRepository(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"url-a", "url-b"}, repo.Lookup("Lima"))
	assert.Nil(t, repo.Lookup("Cusco"))
}

// TestCatalogLookup_CaseInsensitive verifies lookups ignore the caller's
// casing when no exact entry matches.
func TestCatalogLookup_CaseInsensitive(t *testing.T) {
	path := writeCatalog(t, `{"Buenos Aires": ["url-ba"]}`)

	repo, err := repositories.NewCatalogRepository(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"url-ba"}, repo.Lookup("buenos aires"))
}

// TestCatalog_MissingFile verifies a missing catalog yields an empty,
// usable repository plus the load error.
func TestCatalog_MissingFile(t *testing.T) {
	repo, err := repositories.NewCatalogRepository(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
	require.NotNil(t, repo)
	assert.Nil(t, repo.Lookup("Lima"))
}

func TestCatalog_CorruptFile(t *testing.T) {
	path := writeCatalog(t, "not json")

	repo, err := repositories.NewCatalogRepository(path)

	assert.Error(t, err)
	require.NotNil(t, repo)
	assert.Nil(t, repo.Lookup("Lima"))
}
