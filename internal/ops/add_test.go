package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	out, err := Add(ctx, store, AddInput{Name: "Buy milk"})
	require.NoError(t, err)
	require.Equal(t, "Buy milk", out.Name)
	require.False(t, out.Completed)

	_, err = item.ParseID(out.ID)
	require.NoError(t, err, "id should be a valid ULID")

	items, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, out.ID, items[0].ID.String())
}

func TestAdd_BlankName(t *testing.T) {
	store := setupStore(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := Add(context.Background(), store, AddInput{Name: name})
		requireCode(t, err, errors.ErrInvalidRequest)
	}

	out, err := List(context.Background(), store, ListInput{})
	require.NoError(t, err)
	require.Zero(t, out.Total)
}

func TestAdd_ControlCharacters(t *testing.T) {
	store := setupStore(t)

	for _, name := range []string{"buy milk\n- [x] pay rent", "a\tb", "x\x1b[31m"} {
		_, err := Add(context.Background(), store, AddInput{Name: name})
		requireCode(t, err, errors.ErrInvalidRequest)
	}

	out, err := List(context.Background(), store, ListInput{})
	require.NoError(t, err)
	require.Zero(t, out.Total)
}
