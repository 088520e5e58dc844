package ops

import (
	"context"

	"github.com/hpungsan/todo/internal/app"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	OpenOnly bool // skip completed items
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []ItemView `json:"items"`
	Total int        `json:"total"`
	Open  int        `json:"open"`
}

// List returns stored items in insertion order. Total and Open always count
// the whole list, even when OpenOnly filters the items.
func List(ctx context.Context, store app.Store, input ListInput) (*ListOutput, error) {
	items, err := store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListOutput{
		Items: make([]ItemView, 0, len(items)),
		Total: len(items),
	}
	for _, it := range items {
		if !it.Completed {
			out.Open++
		} else if input.OpenOnly {
			continue
		}
		out.Items = append(out.Items, NewItemView(it))
	}
	return out, nil
}
