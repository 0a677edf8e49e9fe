package utils

import (
	"path/filepath"
	"strings"
)

// ModuleName derives the dotted module path of a Python file relative to the
// application root, e.g. /app/pkg/views.py under /app becomes "pkg.views".
// A package __init__.py takes the package's own name. Files outside the root
// fall back to their bare file name.
func ModuleName(path, appRoot string) string {
	rel, err := filepath.Rel(appRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}

	rel = strings.TrimSuffix(rel, ".py")
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, "/__init__")
	if rel == "__init__" || rel == "." {
		return ""
	}

	return strings.ReplaceAll(rel, "/", ".")
}
