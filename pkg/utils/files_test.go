package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtils_IsPythonFile(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"python file", "views.py", true},
		{"package init", "__init__.py", true},
		{"go file", "main.go", false},
		{"no extension", "Makefile", false},
		{"pyc file", "views.pyc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, IsPythonFile(tt.filename), "IsPythonFile(%q)", tt.filename)
		})
	}
}

func TestUtils_FindPythonFiles(t *testing.T) {
	req := require.New(t)
	tempDir, err := os.MkdirTemp("", "importlint_test")
	req.NoError(err)
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			t.Logf("Failed to remove temp dir: %v", err)
		}
	}()

	req.NoError(os.WriteFile(filepath.Join(tempDir, "main.py"), []byte("import os\n"), 0644))
	req.NoError(os.WriteFile(filepath.Join(tempDir, "README.md"), []byte(""), 0644))

	subDir := filepath.Join(tempDir, "pkg")
	req.NoError(os.MkdirAll(subDir, 0755))
	req.NoError(os.WriteFile(filepath.Join(subDir, "__init__.py"), []byte(""), 0644))

	cacheDir := filepath.Join(tempDir, "__pycache__")
	req.NoError(os.MkdirAll(cacheDir, 0755))
	req.NoError(os.WriteFile(filepath.Join(cacheDir, "main.py"), []byte(""), 0644))

	hiddenDir := filepath.Join(tempDir, ".venv")
	req.NoError(os.MkdirAll(hiddenDir, 0755))
	req.NoError(os.WriteFile(filepath.Join(hiddenDir, "site.py"), []byte(""), 0644))

	files, err := FindPythonFiles(tempDir)
	req.NoError(err)
	req.ElementsMatch([]string{
		filepath.Join(tempDir, "main.py"),
		filepath.Join(subDir, "__init__.py"),
	}, files)
}

func TestUtils_IsDirectory(t *testing.T) {
	req := require.New(t)
	tempDir, err := os.MkdirTemp("", "importlint_test")
	req.NoError(err)
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	isDir, err := IsDirectory(tempDir)
	req.NoError(err)
	req.True(isDir)

	file := filepath.Join(tempDir, "a.py")
	req.NoError(os.WriteFile(file, []byte(""), 0644))
	isDir, err = IsDirectory(file)
	req.NoError(err)
	req.False(isDir)

	_, err = IsDirectory(filepath.Join(tempDir, "missing"))
	req.Error(err)
}
