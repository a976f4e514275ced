package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"victoriaos-connector/internal/trigger/repository"
	"victoriaos-connector/internal/trigger/repository/sqlite"
	"victoriaos-connector/internal/trigger/repository/storetest"
)

func TestStore(t *testing.T) {
	s, err := sqlite.New(context.Background(), repository.SQLiteOptions{Path: filepath.Join(t.TempDir(), "state.db")}, nil)
	require.NoError(t, err)
	defer s.Close()

	storetest.Run(t, s)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := sqlite.New(ctx, repository.SQLiteOptions{Path: path}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "wf/trigger", "abc"))
	require.NoError(t, s.Close())

	s, err = sqlite.New(ctx, repository.SQLiteOptions{Path: path}, nil)
	require.NoError(t, err)
	defer s.Close()

	id, err := s.Get(ctx, "wf/trigger")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := sqlite.New(context.Background(), repository.SQLiteOptions{}, nil)
	assert.Error(t, err)
}
