package classify

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolver locates a top-level module name on the import search path.
// Implementations report the filesystem path the module would load from,
// or false when the name cannot be found. Resolution failure is never an
// error; the classifier degrades it to "assume third party".
type Resolver interface {
	Resolve(name string) (string, bool)
}

// moduleSuffixes are the file forms a single-file module can take, tried in
// the finder's order.
var moduleSuffixes = []string{".py", ".so"}

var _ Resolver = (*FileResolver)(nil)

// FileResolver looks module names up under a list of search-path roots,
// mirroring the runtime's module finder: a package directory containing
// __init__.py wins over a plain <name>.py or <name>.so file, and earlier
// roots shadow later ones.
type FileResolver struct {
	fs    afero.Fs
	roots []string
}

func NewFileResolver(fs afero.Fs, roots ...string) *FileResolver {
	return &FileResolver{fs: fs, roots: roots}
}

func (r *FileResolver) Resolve(name string) (string, bool) {
	for _, root := range r.roots {
		pkgDir := filepath.Join(root, name)
		if ok, _ := afero.Exists(r.fs, filepath.Join(pkgDir, "__init__.py")); ok {
			return pkgDir, true
		}
		for _, suffix := range moduleSuffixes {
			mod := filepath.Join(root, name+suffix)
			if ok, _ := afero.Exists(r.fs, mod); ok {
				return mod, true
			}
		}
	}
	return "", false
}
