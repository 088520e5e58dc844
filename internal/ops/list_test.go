package ops

import (
	"context"
	"testing"
)

func TestList_Empty(t *testing.T) {
	store := setupStore(t)

	out, err := List(context.Background(), store, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Items == nil {
		t.Error("Items should be an empty slice, not nil")
	}
	if out.Total != 0 || out.Open != 0 {
		t.Errorf("Total/Open = %d/%d, want 0/0", out.Total, out.Open)
	}
}

func TestList_Counts(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	a := mustAdd(t, store, "a")
	mustAdd(t, store, "b")
	mustAdd(t, store, "c")
	if _, err := Toggle(ctx, store, ToggleInput{ID: a.ID}); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	out, err := List(ctx, store, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(out.Items))
	}
	if out.Total != 3 {
		t.Errorf("Total = %d, want 3", out.Total)
	}
	if out.Open != 2 {
		t.Errorf("Open = %d, want 2", out.Open)
	}
	for i, want := range []string{"a", "b", "c"} {
		if out.Items[i].Name != want {
			t.Errorf("Items[%d].Name = %q, want %q", i, out.Items[i].Name, want)
		}
	}
	if !out.Items[0].Completed {
		t.Error("Items[0] should be completed")
	}
}

func TestList_OpenOnly(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	a := mustAdd(t, store, "a")
	mustAdd(t, store, "b")
	if _, err := Toggle(ctx, store, ToggleInput{ID: a.ID}); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	out, err := List(ctx, store, ListInput{OpenOnly: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Name != "b" {
		t.Errorf("Items = %+v, want only b", out.Items)
	}
	if out.Total != 2 || out.Open != 1 {
		t.Errorf("Total/Open = %d/%d, want 2/1", out.Total, out.Open)
	}
}
