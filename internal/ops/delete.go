package ops

import (
	"context"

	"github.com/hpungsan/todo/internal/app"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes an item. Unknown ids are NOT_FOUND rather than a silent no-op.
func Delete(ctx context.Context, store app.Store, input DeleteInput) (*DeleteOutput, error) {
	it, err := lookup(ctx, store, input.ID)
	if err != nil {
		return nil, err
	}

	if err := store.Delete(ctx, it); err != nil {
		return nil, err
	}

	return &DeleteOutput{
		Deleted: true,
		ID:      it.ID.String(),
	}, nil
}
