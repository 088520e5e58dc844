package ops

import (
	"context"

	"github.com/hpungsan/todo/internal/app"
)

// ToggleInput contains parameters for the Toggle operation.
type ToggleInput struct {
	ID string
}

// Toggle flips the completion flag of the item with the given id.
func Toggle(ctx context.Context, store app.Store, input ToggleInput) (*ItemView, error) {
	it, err := lookup(ctx, store, input.ID)
	if err != nil {
		return nil, err
	}

	toggled := it.Toggled()
	if err := store.Update(ctx, toggled); err != nil {
		return nil, err
	}

	view := NewItemView(toggled)
	return &view, nil
}
