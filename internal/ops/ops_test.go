package ops

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/todo/internal/db"
	"github.com/hpungsan/todo/internal/errors"
)

func setupStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Init(context.Background(), filepath.Join(t.TempDir(), "todo.db"), db.Options{})
	require.NoError(t, err)
	return store
}

func mustAdd(t *testing.T, store *db.Store, name string) *ItemView {
	t.Helper()
	out, err := Add(context.Background(), store, AddInput{Name: name})
	require.NoError(t, err)
	return out
}

func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, code), "want %s, got %v", code, err)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	added := mustAdd(t, store, "a")

	it, err := lookup(ctx, store, added.ID)
	require.NoError(t, err)
	require.Equal(t, "a", it.Name)

	_, err = lookup(ctx, store, "not-an-id")
	requireCode(t, err, errors.ErrInvalidRequest)

	_, err = lookup(ctx, store, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	requireCode(t, err, errors.ErrNotFound)
}
