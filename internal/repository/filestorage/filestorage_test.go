package filestorage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Popolzen/unreputable/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === Helpers ===

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readRecords(t *testing.T, path string) []model.LinkRecord {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []model.LinkRecord
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

// === NewLinkRepository ===

func TestNewLinkRepository_EmptyFile(t *testing.T) {
	path := createTempFile(t, "")

	repo, err := NewLinkRepository(path)

	require.NoError(t, err)
	assert.Empty(t, repo.links)
	assert.Equal(t, path, repo.path)
}

func TestNewLinkRepository_NonexistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	repo, err := NewLinkRepository(path)

	require.NoError(t, err)
	assert.Empty(t, repo.links)
}

func TestNewLinkRepository_WithExistingData(t *testing.T) {
	data := []model.LinkRecord{
		{UUID: "1", Mask: "abc123", Actual: "https://one.com", Hits: 3},
		{UUID: "2", Mask: "def456", Actual: "https://two.com"},
	}
	content, _ := json.Marshal(data)
	path := createTempFile(t, string(content))

	repo, err := NewLinkRepository(path)
	require.NoError(t, err)

	assert.Len(t, repo.links, 2)
	link, err := repo.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.Link{Mask: "abc123", Actual: "https://one.com", Hits: 3}, link)
}

func TestNewLinkRepository_InvalidJSON(t *testing.T) {
	path := createTempFile(t, "invalid json {{{")

	_, err := NewLinkRepository(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "десериализации")
}

// === Store / Get ===

func TestStore_PersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "links.json")
	repo, err := NewLinkRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Store(ctx, model.Link{Mask: "abc123", Actual: "https://example.com"}))

	records := readRecords(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, "abc123", records[0].Mask)
	assert.Equal(t, "https://example.com", records[0].Actual)
	assert.NotEmpty(t, records[0].UUID)
}

func TestStore_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLinkRepository(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	require.NoError(t, repo.Store(ctx, model.Link{Mask: "dupl12", Actual: "https://first.com"}))
	err = repo.Store(ctx, model.Link{Mask: "dupl12", Actual: "https://second.com"})

	assert.ErrorIs(t, err, model.ErrMaskExists)
}

func TestStore_WriteError_RollsBack(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLinkRepository(filepath.Join(t.TempDir(), "nodir", "links.json"))
	require.NoError(t, err)

	err = repo.Store(ctx, model.Link{Mask: "abc123", Actual: "https://example.com"})

	assert.Error(t, err)
	_, err = repo.Get(ctx, "abc123")
	assert.ErrorIs(t, err, model.ErrLinkNotFound)
}

func TestGet_NotFound(t *testing.T) {
	repo, err := NewLinkRepository(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "notfound")

	assert.ErrorIs(t, err, model.ErrLinkNotFound)
}

// === IncrementHits ===

func TestIncrementHits_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "links.json")
	repo, err := NewLinkRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Store(ctx, model.Link{Mask: "hits12", Actual: "https://example.com"}))
	require.NoError(t, repo.IncrementHits(ctx, "hits12"))
	require.NoError(t, repo.IncrementHits(ctx, "hits12"))
	require.NoError(t, repo.Close())

	reloaded, err := NewLinkRepository(path)
	require.NoError(t, err)

	link, err := reloaded.Get(ctx, "hits12")
	require.NoError(t, err)
	assert.Equal(t, int64(2), link.Hits)
}

func TestIncrementHits_WriteError_RollsBack(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "links.json")
	repo, err := NewLinkRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Store(ctx, model.Link{Mask: "hits12", Actual: "https://example.com"}))

	// на месте файла каталог, запись не пройдёт
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0755))

	assert.Error(t, repo.IncrementHits(ctx, "hits12"))

	link, err := repo.Get(ctx, "hits12")
	require.NoError(t, err)
	assert.Equal(t, int64(0), link.Hits)
}

func TestIncrementHits_NotFound(t *testing.T) {
	repo, err := NewLinkRepository(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	err = repo.IncrementHits(context.Background(), "missing")

	assert.ErrorIs(t, err, model.ErrLinkNotFound)
}

// === Ping ===

func TestPing(t *testing.T) {
	repo, err := NewLinkRepository(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestPing_DoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	repo, err := NewLinkRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Ping(context.Background()))

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPing_Unavailable(t *testing.T) {
	repo, err := NewLinkRepository(filepath.Join(t.TempDir(), "nodir", "links.json"))
	require.NoError(t, err)

	assert.Error(t, repo.Ping(context.Background()))
}
