package ops

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/item"
)

// Export formats
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// ExportTitle heads every exported checklist.
const ExportTitle = "Todo"

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Format string // markdown (default) or html
	Path   string // optional; when empty the content is returned inline
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Format  string `json:"format"`
	Count   int    `json:"count"`
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// Export renders every item as a task list checklist.
func Export(ctx context.Context, store app.Store, input ExportInput) (*ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatMarkdown
	}
	if format != FormatMarkdown && format != FormatHTML {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown export format %q (want markdown or html)", input.Format))
	}

	if input.Path != "" {
		if err := ValidateExportPath(input.Path, format); err != nil {
			return nil, err
		}
	}

	items, err := store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	content := []byte(RenderMarkdown(items))
	if format == FormatHTML {
		var buf bytes.Buffer
		if err := markdown.Convert(content, &buf); err != nil {
			return nil, errors.NewInternal(err)
		}
		content = buf.Bytes()
	}

	out := &ExportOutput{Format: format, Count: len(items)}
	if input.Path == "" {
		out.Content = string(content)
		return out, nil
	}

	if err := writeAtomic(input.Path, content); err != nil {
		return nil, err
	}
	out.Path = input.Path
	return out, nil
}

// RenderMarkdown renders items as a GitHub task list under a level one heading.
func RenderMarkdown(items []item.Item) string {
	var b strings.Builder
	b.WriteString("# " + ExportTitle + "\n\n")
	for _, it := range items {
		box := " "
		if it.Completed {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, escapeMarkdown(it.Name))
	}
	return b.String()
}

// escapeMarkdown backslash-escapes characters that would otherwise turn a
// name into markup.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune("\\`*_[]<>#!|", r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeAtomic writes data to a temp file next to path and renames it into
// place, so a failed export leaves any existing file untouched.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"

	file, err := openFileNoFollow(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return errors.NewInternal(err)
	}
	if err := file.Sync(); err != nil {
		return errors.NewInternal(err)
	}

	// Close before rename (required on Windows).
	if err := file.Close(); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	if err := os.Rename(tempPath, path); err != nil {
		if runtime.GOOS == "windows" {
			if _, statErr := os.Stat(path); statErr == nil {
				return errors.NewInvalidRequest("export destination already exists; choose a new path or delete the existing file")
			}
		}
		return errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	success = true
	return nil
}
