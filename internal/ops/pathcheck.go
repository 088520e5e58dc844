package ops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hpungsan/todo/internal/errors"
)

// exportExtensions lists the accepted file extensions per format.
var exportExtensions = map[string][]string{
	FormatMarkdown: {".md", ".markdown"},
	FormatHTML:     {".html", ".htm"},
}

// ValidateExportPath checks an export destination:
// no ".." components, an extension matching format, and not a symlink.
func ValidateExportPath(path, format string) error {
	if containsTraversal(path) {
		return errors.NewInvalidRequest("path must not contain directory traversal (..)")
	}

	cleaned := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleaned))
	allowed := exportExtensions[format]
	ok := false
	for _, a := range allowed {
		if ext == a {
			ok = true
			break
		}
	}
	if !ok {
		return errors.NewInvalidRequest("path must have one of the extensions " + strings.Join(allowed, ", ") + " for " + format + " export")
	}

	if info, err := os.Lstat(cleaned); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return errors.NewInvalidRequest("path must not be a symlink")
	}
	return nil
}

// containsTraversal checks if path contains ".." directory traversal.
func containsTraversal(path string) bool {
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == ".." {
			return true
		}
	}
	// Forward slashes count on every platform
	if filepath.Separator != '/' {
		for _, part := range strings.Split(path, "/") {
			if part == ".." {
				return true
			}
		}
	}
	return false
}
