package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/compass/internal/domain/profile"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte(`"v"`)))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"v"`), got)
}

func TestMemory_MissingKey(t *testing.T) {
	_, err := NewMemory().Get(context.Background(), "absent")
	assert.ErrorIs(t, err, profile.ErrKeyNotFound)
}

func TestMemory_Remove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("1")))
	require.NoError(t, m.Remove(ctx, "k"))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, profile.ErrKeyNotFound)

	// Removing an absent key is not an error.
	assert.NoError(t, m.Remove(ctx, "k"))
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	src := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", src))
	src[0] = 'z'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	// Mutating the returned slice does not affect the stored value.
	got[0] = 'z'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
