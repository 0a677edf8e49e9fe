// Package checker implements the import style checks: one-per-line imports,
// top-of-file placement, provenance grouping with in-group ordering, and
// discouraged relative imports.
package checker

import (
	"strings"

	"github.com/ecstyle/import-checker/pkg/classify"
	"github.com/ecstyle/import-checker/pkg/messages"
	"github.com/ecstyle/import-checker/pkg/pytree"
)

// Classifier decides the provenance group of a top-level module name.
type Classifier interface {
	Classify(name string) classify.Group
}

var _ pytree.Visitor = (*ImportChecker)(nil)

// ImportChecker collects a module's top-level imports while the host walks
// the tree and verifies their ordering once the module ends. One module is
// live at a time; the record buffer is reset unconditionally at end of
// module, whether or not a violation fired.
type ImportChecker struct {
	classifier Classifier
	reporter   Reporter
	records    []ImportRecord
}

func New(classifier Classifier, reporter Reporter) *ImportChecker {
	return &ImportChecker{classifier: classifier, reporter: reporter}
}

// Name identifies the checker to a host engine.
func (c *ImportChecker) Name() string { return messages.CheckerName }

func (c *ImportChecker) VisitImport(n *pytree.Import) {
	if len(n.Names) > 1 {
		c.report(messages.SeparateLines, n.Loc())
	}
	c.collect(n)
}

func (c *ImportChecker) VisitImportFrom(n *pytree.ImportFrom) {
	if n.Level > 0 {
		c.report(messages.RelativeImport, n.Loc())
	}
	c.collect(n)
}

// LeaveModule runs the order verification and resets per-module state.
func (c *ImportChecker) LeaveModule(m *pytree.Module) {
	c.verifyOrder(m)
	c.records = c.records[:0]
}

// collect appends a record for a top-level import. A nested import is
// flagged instead and stays out of the ordering analysis; its position is
// already wrong for a different reason.
func (c *ImportChecker) collect(n pytree.Stmt) {
	mod, ok := n.Parent().(*pytree.Module)
	if !ok {
		c.report(messages.TopOfFile, n.Loc())
		return
	}
	c.records = append(c.records, buildRecord(len(c.records), mod, n))
}

func (c *ImportChecker) report(code string, loc pytree.Loc, args ...any) {
	c.reporter.Report(Violation{Code: code, Loc: loc, Args: args})
}

func buildRecord(index int, m *pytree.Module, n pytree.Stmt) ImportRecord {
	rec := ImportRecord{Index: index, Text: n.AsString(), Loc: n.Loc()}
	switch n := n.(type) {
	case *pytree.Import:
		rec.Kind = PlainImport
		if len(n.Names) > 0 {
			rec.Pieces = strings.Split(n.Names[0].Name, ".")
		}
	case *pytree.ImportFrom:
		rec.Kind = FromImport
		rec.Level = n.Level
		rec.Pieces = fromImportPieces(m, n)
	}
	return rec
}

// fromImportPieces resolves the module actually bound by a from-import. An
// absolute import contributes nothing from the enclosing module; a relative
// import starts from the enclosing module's path with Level trailing pieces
// stripped, clamped to empty when Level exceeds the path depth.
func fromImportPieces(m *pytree.Module, n *pytree.ImportFrom) []string {
	var pieces []string
	if n.Level > 0 {
		own := m.NamePieces()
		keep := len(own) - n.Level
		if keep < 0 {
			keep = 0
		}
		pieces = append(pieces, own[:keep]...)
	}
	pieces = append(pieces, n.ModulePieces()...)
	if len(n.Names) > 0 {
		pieces = append(pieces, n.Names[0].Name)
	}
	return pieces
}
