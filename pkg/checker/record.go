package checker

import "github.com/ecstyle/import-checker/pkg/pytree"

// Kind distinguishes the two import statement forms.
type Kind int

const (
	PlainImport Kind = iota
	FromImport
)

// ImportRecord is one collected top-level import statement. Records are
// owned by the checker for the duration of one module and never mutated by
// the order verification.
type ImportRecord struct {
	// Index is the 0-based position among the module's collected imports,
	// in the order the statements were encountered.
	Index int
	Kind  Kind
	// Pieces are the dotted path segments identifying the module actually
	// bound; for a from-import, the resolved module path with the first
	// imported symbol appended as the final piece.
	Pieces []string
	// Level is the number of leading dots of a relative from-import.
	Level int
	// Text is the statement rendered back to source, used both for display
	// and for order comparison.
	Text string
	Loc  pytree.Loc
}
