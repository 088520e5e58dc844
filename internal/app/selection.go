package app

// Selection is either the virtual "new entry" row above the list or a
// specific item index. The zero value is the new entry row.
type Selection struct {
	onItem bool
	index  int
}

// NewEntryRow selects the virtual row used to start adding an item.
func NewEntryRow() Selection {
	return Selection{}
}

// ItemAt selects the item at index i. Negative indexes select the new entry row.
func ItemAt(i int) Selection {
	if i < 0 {
		return NewEntryRow()
	}
	return Selection{onItem: true, index: i}
}

// IsNewEntry reports whether the new entry row is selected.
func (s Selection) IsNewEntry() bool {
	return !s.onItem
}

// Index returns the selected item index; ok is false on the new entry row.
func (s Selection) Index() (i int, ok bool) {
	if !s.onItem {
		return 0, false
	}
	return s.index, true
}

// Cursor returns the row as an integer, -1 for the new entry row.
func (s Selection) Cursor() int {
	if !s.onItem {
		return -1
	}
	return s.index
}

func (s Selection) up() Selection {
	return ItemAt(s.Cursor() - 1)
}

func (s Selection) down(count int) Selection {
	if count == 0 {
		return s
	}
	next := s.Cursor() + 1
	if next > count-1 {
		next = count - 1
	}
	return ItemAt(next)
}

// clamp pulls the selection back inside a list of count items.
func (s Selection) clamp(count int) Selection {
	if s.Cursor() > count-1 {
		return ItemAt(count - 1)
	}
	return s
}
