package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecstyle/import-checker/pkg/classify"
	"github.com/ecstyle/import-checker/pkg/messages"
	"github.com/ecstyle/import-checker/pkg/pytree"
)

// stubClassifier maps names to groups directly; unknown names are third
// party, matching the classifier's unresolvable-name behavior.
type stubClassifier map[string]classify.Group

func (s stubClassifier) Classify(name string) classify.Group {
	if g, ok := s[name]; ok {
		return g
	}
	return classify.ThirdParty
}

type recordingReporter struct {
	violations []Violation
}

func (r *recordingReporter) Report(v Violation) {
	r.violations = append(r.violations, v)
}

func defaultStub() stubClassifier {
	return stubClassifier{
		"os":     classify.Stdlib,
		"sys":    classify.Stdlib,
		"json":   classify.Stdlib,
		"myapp":  classify.AppLocal,
		"pkg":    classify.AppLocal,
		"helper": classify.AppLocal,
	}
}

func moduleOf(name string, stmts ...pytree.Stmt) *pytree.Module {
	m := &pytree.Module{Name: name}
	for _, s := range stmts {
		m.AddStmt(s)
	}
	return m
}

func checkModule(t *testing.T, m *pytree.Module) []Violation {
	t.Helper()
	rep := &recordingReporter{}
	pytree.Walk(m, New(defaultStub(), rep))
	return rep.violations
}

func codes(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Code
	}
	return out
}

func TestChecker_alphabeticalOrderWithinGroup(t *testing.T) {
	req := require.New(t)

	// Both stdlib, so grouping is fine, but os sorts before sys.
	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "sys"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "os"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.OutOfOrderAlpha}, codes(violations))
	req.Equal("  import sys\n  import os", violations[0].Args[0])
	req.Equal("  import os\n  import sys", violations[0].Args[1])
}

func TestChecker_groupOrder(t *testing.T) {
	req := require.New(t)

	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "requests"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "os"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.OutOfOrder}, codes(violations))
	req.Equal("  import requests\n  import os", violations[0].Args[0])
	req.Equal("  import os\n  import requests", violations[0].Args[1])

	diff, ok := violations[0].Args[2].(string)
	req.True(ok)
	req.True(strings.HasPrefix(diff, "--- actual"), "diff should name the actual side: %q", diff)
	req.Contains(diff, "+++ expected")
	req.Contains(diff, "@@")
}

func TestChecker_groupOrderTakesPrecedence(t *testing.T) {
	req := require.New(t)

	// Grouping and in-group alphabetical order are both wrong; only the
	// grouping violation may fire.
	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "requests"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "sys"}),
		pytree.NewImport(pytree.Loc{Line: 3}, pytree.Alias{Name: "os"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.OutOfOrder}, codes(violations))
}

func TestChecker_separateLines(t *testing.T) {
	req := require.New(t)

	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "sys"}, pytree.Alias{Name: "os"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.SeparateLines}, codes(violations))
	req.Equal(1, violations[0].Loc.Line)
}

func TestChecker_multiNameImportStaysOneRecord(t *testing.T) {
	req := require.New(t)

	// "import sys, os" is keyed by its first name, so stdlib before third
	// party is still the right group order and no ordering message fires.
	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "sys"}, pytree.Alias{Name: "os"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "requests"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.SeparateLines}, codes(violations))
}

func TestChecker_relativeImport(t *testing.T) {
	req := require.New(t)

	m := moduleOf("pkg.sub",
		pytree.NewImportFrom(pytree.Loc{Line: 1}, "", 1, pytree.Alias{Name: "helpers"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.RelativeImport}, codes(violations))
}

func TestChecker_relativeLevelBeyondModuleDepth(t *testing.T) {
	req := require.New(t)

	// Stripping more pieces than the module path has clamps to empty.
	m := moduleOf("mod",
		pytree.NewImportFrom(pytree.Loc{Line: 1}, "", 3, pytree.Alias{Name: "x"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.RelativeImport}, codes(violations))
}

func TestChecker_nestedImportExcludedFromOrdering(t *testing.T) {
	req := require.New(t)

	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "os"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "sys"}),
	)
	fn := pytree.NewFuncDef(pytree.Loc{Line: 4}, "main")
	// A third-party import that would break the ordering were it collected.
	fn.AddStmt(pytree.NewImport(pytree.Loc{Line: 5, Col: 4}, pytree.Alias{Name: "requests"}))
	m.AddStmt(fn)

	violations := checkModule(t, m)

	req.Equal([]string{messages.TopOfFile}, codes(violations))
	req.Equal(5, violations[0].Loc.Line)
}

func TestChecker_emptyModule(t *testing.T) {
	req := require.New(t)
	req.Empty(checkModule(t, moduleOf("")))
}

func TestChecker_fromImportKeyedByStatedModule(t *testing.T) {
	req := require.New(t)

	// An absolute from-import resolves to its stated module, not the
	// enclosing module, so "from os.path import join" is standard library
	// even inside an application package.
	m := moduleOf("myapp.views",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "requests"}),
		pytree.NewImportFrom(pytree.Loc{Line: 2}, "os.path", 0, pytree.Alias{Name: "join"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.OutOfOrder}, codes(violations))
	req.Equal("  from os.path import join\n  import requests", violations[0].Args[1])
}

func TestChecker_alphabeticalUsesPiecesNotText(t *testing.T) {
	req := require.New(t)

	// Pieces ("os","misc") sort before ("os","path","join") even though
	// the rendered texts would sort the other way around.
	m := moduleOf("",
		pytree.NewImportFrom(pytree.Loc{Line: 1}, "os.path", 0, pytree.Alias{Name: "join"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "os.misc"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.OutOfOrderAlpha}, codes(violations))
	req.Equal("  import os.misc\n  from os.path import join", violations[0].Args[1])
}

func TestChecker_duplicateImportsKeepEncounteredOrder(t *testing.T) {
	req := require.New(t)

	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "os"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "os"}),
	)
	req.Empty(checkModule(t, m))
}

func TestChecker_stateResetsBetweenModules(t *testing.T) {
	req := require.New(t)

	rep := &recordingReporter{}
	chk := New(defaultStub(), rep)

	first := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "requests"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "os"}),
	)
	pytree.Walk(first, chk)
	req.Equal([]string{messages.OutOfOrder}, codes(rep.violations))

	// A correctly ordered second module must start from an empty buffer.
	second := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "os"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "requests"}),
	)
	pytree.Walk(second, chk)
	req.Len(rep.violations, 1)
}

func TestChecker_groupingOrderInvariant(t *testing.T) {
	req := require.New(t)

	// Shuffled input across all three groups; the expected list must come
	// out stdlib, third party, application local, keeping encountered
	// order within each group.
	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "myapp"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "requests"}),
		pytree.NewImport(pytree.Loc{Line: 3}, pytree.Alias{Name: "sys"}),
		pytree.NewImport(pytree.Loc{Line: 4}, pytree.Alias{Name: "flask"}),
		pytree.NewImport(pytree.Loc{Line: 5}, pytree.Alias{Name: "os"}),
		pytree.NewImport(pytree.Loc{Line: 6}, pytree.Alias{Name: "pkg"}),
	)
	violations := checkModule(t, m)

	req.Equal([]string{messages.OutOfOrder}, codes(violations))
	req.Equal(strings.Join([]string{
		"  import sys",
		"  import os",
		"  import requests",
		"  import flask",
		"  import myapp",
		"  import pkg",
	}, "\n"), violations[0].Args[1])
}

func TestChecker_diffRoundTrip(t *testing.T) {
	req := require.New(t)

	m := moduleOf("",
		pytree.NewImport(pytree.Loc{Line: 1}, pytree.Alias{Name: "requests"}),
		pytree.NewImport(pytree.Loc{Line: 2}, pytree.Alias{Name: "os"}),
		pytree.NewImport(pytree.Loc{Line: 3}, pytree.Alias{Name: "myapp"}),
	)
	violations := checkModule(t, m)
	req.Len(violations, 1)

	expected := unindentLines(violations[0].Args[1].(string))
	actual := unindentLines(violations[0].Args[0].(string))
	diff := violations[0].Args[2].(string)

	req.Equal(expected, applyDiff(t, actual, diff))
}

func unindentLines(block string) []string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return lines
}

// applyDiff replays a unified diff over its source lines.
func applyDiff(t *testing.T, source []string, diff string) []string {
	t.Helper()

	var out []string
	pos := 0
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ "):
		case strings.HasPrefix(line, "@@"):
		case strings.HasPrefix(line, "+"):
			out = append(out, line[1:])
		case strings.HasPrefix(line, "-"):
			require.Less(t, pos, len(source))
			require.Equal(t, source[pos], line[1:])
			pos++
		case strings.HasPrefix(line, " "):
			require.Less(t, pos, len(source))
			require.Equal(t, source[pos], line[1:])
			out = append(out, line[1:])
			pos++
		}
	}
	return out
}

func TestChecker_classificationIsIdempotent(t *testing.T) {
	req := require.New(t)

	chk := New(defaultStub(), &recordingReporter{})
	rec := ImportRecord{Pieces: []string{"os"}}
	first := chk.groupOf(rec)
	for i := 0; i < 5; i++ {
		req.Equal(first, chk.groupOf(rec))
	}
}

func TestChecker_name(t *testing.T) {
	req := require.New(t)
	req.Equal(messages.CheckerName, New(defaultStub(), &recordingReporter{}).Name())
}
