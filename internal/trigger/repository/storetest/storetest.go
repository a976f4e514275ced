// Package storetest checks a repository.Store against the behaviour every
// implementation must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"victoriaos-connector/internal/trigger/repository"
)

// Run exercises s. The store must start empty.
func Run(t *testing.T, s repository.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty scope reads as unregistered", func(t *testing.T) {
		id, err := s.Get(ctx, "wf-1/trigger")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "wf-1/trigger", "abc"))
		id, err := s.Get(ctx, "wf-1/trigger")
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "wf-1/trigger", "def"))
		id, err := s.Get(ctx, "wf-1/trigger")
		require.NoError(t, err)
		assert.Equal(t, "def", id)
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		id, err := s.Get(ctx, "wf-2/trigger")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Clear(ctx, "wf-1/trigger"))
		id, err := s.Get(ctx, "wf-1/trigger")
		require.NoError(t, err)
		assert.Empty(t, id)

		require.NoError(t, s.Clear(ctx, "never-set"))
	})

	t.Run("argument checks", func(t *testing.T) {
		assert.ErrorIs(t, s.Set(ctx, "", "x"), repository.ErrEmptyScope)
		assert.ErrorIs(t, s.Set(ctx, "scope", ""), repository.ErrEmptyID)
		_, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, repository.ErrEmptyScope)
		assert.ErrorIs(t, s.Clear(ctx, ""), repository.ErrEmptyScope)
	})
}
