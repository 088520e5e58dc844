package app

import (
	"context"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

// memStore is an in-memory Store with per-operation failure injection.
type memStore struct {
	items []item.Item

	insertErr error
	loadErr   error
	updateErr error
	deleteErr error

	calls []string
}

func (m *memStore) Insert(_ context.Context, it item.Item) error {
	m.calls = append(m.calls, "insert")
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, existing := range m.items {
		if existing.ID == it.ID {
			return errors.NewWriteFailed(nil)
		}
	}
	m.items = append(m.items, it)
	return nil
}

func (m *memStore) LoadAll(_ context.Context) ([]item.Item, error) {
	m.calls = append(m.calls, "load")
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]item.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memStore) Update(_ context.Context, it item.Item) error {
	m.calls = append(m.calls, "update")
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.items {
		if m.items[i].ID == it.ID {
			m.items[i] = it
		}
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, it item.Item) error {
	m.calls = append(m.calls, "delete")
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.items {
		if m.items[i].ID == it.ID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// find returns the stored copy of id.
func (m *memStore) find(it item.Item) (item.Item, bool) {
	for _, existing := range m.items {
		if existing.ID == it.ID {
			return existing, true
		}
	}
	return item.Item{}, false
}
