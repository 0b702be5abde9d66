package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pleadmd/internal/domain"
	"pleadmd/internal/storage/file"
)

func TestFileStore_PutGet(t *testing.T) {
	dir := t.TempDir()
	store, err := file.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "legal-md-settings", []byte(`{"provider":"openai"}`)))
	got, err := store.Get(ctx, "legal-md-settings")

	require.NoError(t, err)
	assert.JSONEq(t, `{"provider":"openai"}`, string(got))
	assert.FileExists(t, filepath.Join(dir, "legal-md-settings.json"))

	require.NoError(t, store.Put(ctx, "legal-md-settings", []byte(`{"provider":"groq"}`)))
	got, err = store.Get(ctx, "legal-md-settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"provider":"groq"}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "legal-md-examples")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		assert.Error(t, store.Put(context.Background(), key, []byte("{}")), "key=%q", key)
	}
}

func TestFileStore_CreatesDirectoryAndPings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")

	store, err := file.NewFileStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.NoError(t, store.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.ErrorIs(t, store.Ping(context.Background()), domain.ErrStoreUnavailable)
}

func TestNewFileStore_RequiresDir(t *testing.T) {
	_, err := file.NewFileStore("")
	assert.Error(t, err)
}
