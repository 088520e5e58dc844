package app

import "testing"

func TestSelection(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		newEntry  bool
		cursor    int
		wantIndex int
	}{
		{"zero value", Selection{}, true, -1, 0},
		{"new entry row", NewEntryRow(), true, -1, 0},
		{"item 0", ItemAt(0), false, 0, 0},
		{"item 4", ItemAt(4), false, 4, 4},
		{"negative index", ItemAt(-3), true, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.IsNewEntry(); got != tt.newEntry {
				t.Errorf("IsNewEntry() = %v, want %v", got, tt.newEntry)
			}
			if got := tt.sel.Cursor(); got != tt.cursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.cursor)
			}
			idx, ok := tt.sel.Index()
			if ok == tt.newEntry {
				t.Errorf("Index() ok = %v, want %v", ok, !tt.newEntry)
			}
			if idx != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", idx, tt.wantIndex)
			}
		})
	}
}

func TestSelection_Clamp(t *testing.T) {
	if got := ItemAt(5).clamp(3).Cursor(); got != 2 {
		t.Errorf("clamp to 3 items = %d, want 2", got)
	}
	if got := ItemAt(1).clamp(3).Cursor(); got != 1 {
		t.Errorf("in-range clamp = %d, want 1", got)
	}
	if !ItemAt(0).clamp(0).IsNewEntry() {
		t.Error("clamp to empty list should select the new entry row")
	}
}
