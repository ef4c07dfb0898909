package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/compass/internal/domain/profile"
)

func TestFile_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "profile-a", []byte(`{"name":"Alex"}`)))
	require.NoError(t, f.Set(ctx, "current-profile", []byte(`"a"`)))

	// A fresh handle sees the flushed data.
	reopened, err := OpenFile(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "profile-a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alex"}`, string(got))

	got, err = reopened.Get(ctx, "current-profile")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(got))
}

func TestFile_MissingFileIsEmpty(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	_, err = f.Get(context.Background(), "anything")
	assert.ErrorIs(t, err, profile.ErrKeyNotFound)
}

func TestFile_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)

	_, err = f.Get(context.Background(), "anything")
	assert.ErrorIs(t, err, profile.ErrKeyNotFound)

	// The store stays writable and the next flush replaces the junk.
	require.NoError(t, f.Set(context.Background(), "k", []byte("1")))
	reopened, err := OpenFile(path)
	require.NoError(t, err)
	got, err := reopened.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
}

func TestFile_RemovePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "k", []byte("1")))
	require.NoError(t, f.Remove(ctx, "k"))
	assert.NoError(t, f.Remove(ctx, "k"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	_, err = reopened.Get(ctx, "k")
	assert.ErrorIs(t, err, profile.ErrKeyNotFound)
}

func TestFile_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "k", []byte("1")))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
