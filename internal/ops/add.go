package ops

import (
	"context"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/item"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Name string
}

// Add validates the name, assigns a fresh id and inserts an open item.
func Add(ctx context.Context, store app.Store, input AddInput) (*ItemView, error) {
	it, err := item.New(input.Name)
	if err != nil {
		return nil, err
	}
	if err := store.Insert(ctx, it); err != nil {
		return nil, err
	}

	view := NewItemView(it)
	return &view, nil
}
