// Package ops holds the non-interactive operations shared by the CLI and the
// MCP server. Each one opens nothing itself; it works through the Store it is
// given and returns a JSON-ready output.
package ops

import (
	"context"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

// ItemView is the wire form of an item.
type ItemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// NewItemView converts it to its wire form.
func NewItemView(it item.Item) ItemView {
	return ItemView{
		ID:        it.ID.String(),
		Name:      it.Name,
		Completed: it.Completed,
	}
}

// lookup parses id and returns the stored item carrying it.
func lookup(ctx context.Context, store app.Store, id string) (item.Item, error) {
	parsed, err := item.ParseID(id)
	if err != nil {
		return item.Item{}, err
	}

	items, err := store.LoadAll(ctx)
	if err != nil {
		return item.Item{}, err
	}
	for _, it := range items {
		if it.ID == parsed {
			return it, nil
		}
	}
	return item.Item{}, errors.NewNotFound(parsed.String())
}
