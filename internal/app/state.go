// Package app holds the todo application state machine: the loaded items,
// the selection, the screen mode and the pending input, plus the router that
// maps key events onto state operations.
package app

import (
	"context"
	"strings"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

// Store is the durable side of the state. Every call is atomic on its own.
// Update and Delete succeed silently when no row matches.
type Store interface {
	Insert(ctx context.Context, it item.Item) error
	LoadAll(ctx context.Context) ([]item.Item, error)
	Update(ctx context.Context, it item.Item) error
	Delete(ctx context.Context, it item.Item) error
}

// ScreenMode gates which key mappings are active.
type ScreenMode int

const (
	Browsing ScreenMode = iota
	Adding
)

func (m ScreenMode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case Adding:
		return "adding"
	default:
		return "unknown"
	}
}

// State is the in-memory application state. It is owned by a single loop
// and is not safe for concurrent use.
type State struct {
	store     Store
	items     []item.Item
	selection Selection
	mode      ScreenMode
	input     []rune
}

// New returns an empty state in Browsing mode with the new entry row selected.
func New(store Store) *State {
	return &State{
		store:     store,
		items:     make([]item.Item, 0),
		selection: NewEntryRow(),
		mode:      Browsing,
	}
}

// Load creates the state and fills it from the store.
func Load(ctx context.Context, store Store) (*State, error) {
	s := New(store)
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the items with the store contents and clamps the selection.
func (s *State) Reload(ctx context.Context) error {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = make([]item.Item, 0)
	}
	s.items = items
	s.selection = s.selection.clamp(len(s.items))
	return nil
}

// Items returns a copy of the loaded items.
func (s *State) Items() []item.Item {
	out := make([]item.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Selection returns the current selection.
func (s *State) Selection() Selection {
	return s.selection
}

// Mode returns the current screen mode.
func (s *State) Mode() ScreenMode {
	return s.mode
}

// Input returns the pending input buffer.
func (s *State) Input() string {
	return string(s.input)
}

// SubmitNewItem persists the input buffer as a new open item, then appends it
// and returns to Browsing. The selection is left where it was. On any error
// the in-memory state is unchanged.
func (s *State) SubmitNewItem(ctx context.Context) error {
	if s.mode != Adding {
		return errors.NewInvalidState("submit is only valid while adding")
	}

	it, err := item.New(string(s.input))
	if err != nil {
		return err
	}

	if err := s.store.Insert(ctx, it); err != nil {
		return err
	}

	s.items = append(s.items, it)
	s.input = s.input[:0]
	s.mode = Browsing
	return nil
}

// DeleteSelected removes the selected item from the store and then from memory.
// If the last item was selected, the selection moves up one row.
func (s *State) DeleteSelected(ctx context.Context) error {
	idx, err := s.selectedIndex()
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, s.items[idx]); err != nil {
		return err
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if idx == len(s.items) {
		s.MoveCursorUp()
	}
	return nil
}

// ToggleCompletion flips Completed on the selected item. The store is
// updated first; memory only changes once the write succeeded.
func (s *State) ToggleCompletion(ctx context.Context) error {
	idx, err := s.selectedIndex()
	if err != nil {
		return err
	}

	toggled := s.items[idx].Toggled()
	if err := s.store.Update(ctx, toggled); err != nil {
		return err
	}

	s.items[idx] = toggled
	return nil
}

// MoveCursorUp moves the selection one row up, stopping at the new entry row.
func (s *State) MoveCursorUp() {
	s.selection = s.selection.up()
}

// MoveCursorDown moves the selection one row down, stopping at the last item.
func (s *State) MoveCursorDown() {
	s.selection = s.selection.down(len(s.items))
}

// EnterAddMode switches to Adding. Only the new entry row can start an add.
func (s *State) EnterAddMode() error {
	if s.mode == Adding {
		return errors.NewInvalidState("already adding")
	}
	if !s.selection.IsNewEntry() {
		return errors.NewInvalidState("select the new entry row to add an item")
	}
	s.mode = Adding
	return nil
}

// CancelAddMode returns to Browsing and discards the input buffer.
func (s *State) CancelAddMode() {
	s.input = s.input[:0]
	s.mode = Browsing
}

// AppendToInput adds r to the input buffer.
func (s *State) AppendToInput(r rune) error {
	if s.mode != Adding {
		return errors.NewInvalidState("input is only accepted while adding")
	}
	s.input = append(s.input, r)
	return nil
}

// BackspaceInput drops the last rune of the input buffer, if any.
func (s *State) BackspaceInput() error {
	if s.mode != Adding {
		return errors.NewInvalidState("input is only accepted while adding")
	}
	if n := len(s.input); n > 0 {
		s.input = s.input[:n-1]
	}
	return nil
}

// selectedIndex resolves the selection to a valid item index.
func (s *State) selectedIndex() (int, error) {
	idx, ok := s.selection.Index()
	if !ok || idx >= len(s.items) {
		return 0, errors.NewNoSelection()
	}
	return idx, nil
}

// Snapshot is an immutable view of State for renderers.
type Snapshot struct {
	Items     []item.Item
	Selection Selection
	Mode      ScreenMode
	Input     string
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Items:     s.Items(),
		Selection: s.selection,
		Mode:      s.mode,
		Input:     s.Input(),
	}
}

// OpenCount returns how many items are not completed.
func (snap Snapshot) OpenCount() int {
	n := 0
	for _, it := range snap.Items {
		if !it.Completed {
			n++
		}
	}
	return n
}

// HasInput reports whether the input holds anything besides whitespace.
func (snap Snapshot) HasInput() bool {
	return strings.TrimSpace(snap.Input) != ""
}
