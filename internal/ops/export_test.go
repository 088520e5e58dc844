package ops

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

func TestRenderMarkdown(t *testing.T) {
	open, _ := item.New("Buy milk")
	done, _ := item.New("Walk *dog*")
	done = done.Toggled()

	got := RenderMarkdown([]item.Item{open, done})
	want := "# Todo\n\n- [ ] Buy milk\n- [x] Walk \\*dog\\*\n"
	if got != want {
		t.Errorf("RenderMarkdown() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if got := RenderMarkdown(nil); got != "# Todo\n\n" {
		t.Errorf("RenderMarkdown(nil) = %q", got)
	}
}

func TestExport_MarkdownInline(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	a := mustAdd(t, store, "a")
	mustAdd(t, store, "b")
	if _, err := Toggle(ctx, store, ToggleInput{ID: a.ID}); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	out, err := Export(ctx, store, ExportInput{})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if out.Format != FormatMarkdown {
		t.Errorf("Format = %q, want markdown", out.Format)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	if !strings.Contains(out.Content, "- [x] a\n- [ ] b\n") {
		t.Errorf("Content = %q", out.Content)
	}
	if out.Path != "" {
		t.Errorf("Path = %q, want empty", out.Path)
	}
}

func TestExport_OneLinePerItem(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	mustAdd(t, store, "buy milk")

	_, err := Add(ctx, store, AddInput{Name: "pay rent\n- [x] forged"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("Add error = %v, want INVALID_REQUEST", err)
	}

	md, err := Export(ctx, store, ExportInput{})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if md.Count != 1 {
		t.Errorf("Count = %d, want 1", md.Count)
	}
	if got := strings.Count(md.Content, "\n- "); got != md.Count {
		t.Errorf("markdown has %d task lines for %d items: %q", got, md.Count, md.Content)
	}

	html, err := Export(ctx, store, ExportInput{Format: FormatHTML})
	if err != nil {
		t.Fatalf("Export html failed: %v", err)
	}
	if got := strings.Count(html.Content, "<li>"); got != html.Count {
		t.Errorf("html has %d list items for %d items: %q", got, html.Count, html.Content)
	}
}

func TestExport_HTML(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	a := mustAdd(t, store, "done thing")
	mustAdd(t, store, "open thing")
	if _, err := Toggle(ctx, store, ToggleInput{ID: a.ID}); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	out, err := Export(ctx, store, ExportInput{Format: "HTML"})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	for _, want := range []string{"<h1>Todo</h1>", `type="checkbox"`, `checked=""`, "done thing", "open thing", "<ul>"} {
		if !strings.Contains(out.Content, want) {
			t.Errorf("Content missing %q:\n%s", want, out.Content)
		}
	}
	if strings.Count(out.Content, `checked=""`) != 1 {
		t.Errorf("want exactly one checked box:\n%s", out.Content)
	}
}

func TestExport_HTMLEscapesNames(t *testing.T) {
	store := setupStore(t)
	mustAdd(t, store, "<script>alert(1)</script>")

	out, err := Export(context.Background(), store, ExportInput{Format: FormatHTML})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if strings.Contains(out.Content, "<script>") {
		t.Errorf("raw tag leaked into HTML:\n%s", out.Content)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	store := setupStore(t)
	_, err := Export(context.Background(), store, ExportInput{Format: "pdf"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestExport_ToFile(t *testing.T) {
	store := setupStore(t)
	mustAdd(t, store, "a")

	path := filepath.Join(t.TempDir(), "out", "todo.md")
	out, err := Export(context.Background(), store, ExportInput{Path: path})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if out.Path != path {
		t.Errorf("Path = %q, want %q", out.Path, path)
	}
	if out.Content != "" {
		t.Error("Content should be empty when writing to a file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "# Todo\n\n- [ ] a\n" {
		t.Errorf("file = %q", data)
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}

func TestExport_OverwritesExistingFile(t *testing.T) {
	store := setupStore(t)
	mustAdd(t, store, "fresh")

	path := filepath.Join(t.TempDir(), "todo.md")
	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Export(context.Background(), store, ExportInput{Path: path}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "fresh") {
		t.Errorf("file not replaced: %q", data)
	}
}
