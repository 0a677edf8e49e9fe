package checker

import (
	"slices"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/ecstyle/import-checker/pkg/classify"
	"github.com/ecstyle/import-checker/pkg/messages"
	"github.com/ecstyle/import-checker/pkg/pytree"
)

// keyedRecord pairs a record with its provenance group, the leading field of
// both composite sort keys.
type keyedRecord struct {
	ImportRecord
	group classify.Group
}

// verifyOrder compares the textual order of the collected imports against
// the two canonical orderings. At most one violation fires per module: C7003
// when the group partition is wrong, otherwise C7004 when only the in-group
// alphabetical order is wrong. C7004 is a strict refinement of C7003, so
// reporting both would be noise.
func (c *ImportChecker) verifyOrder(m *pytree.Module) {
	if len(c.records) == 0 {
		return
	}

	keyed := make([]keyedRecord, len(c.records))
	actual := make([]string, len(c.records))
	for i, rec := range c.records {
		keyed[i] = keyedRecord{ImportRecord: rec, group: c.groupOf(rec)}
		actual[i] = rec.Text
	}

	byGroup := sortedTexts(keyed, lessByGroup)
	if !slices.Equal(actual, byGroup) {
		c.reportOrder(messages.OutOfOrder, m, actual, byGroup)
		return
	}

	alphabetical := sortedTexts(keyed, lessByGroupAlpha)
	if !slices.Equal(actual, alphabetical) {
		c.reportOrder(messages.OutOfOrderAlpha, m, actual, alphabetical)
	}
}

func (c *ImportChecker) groupOf(rec ImportRecord) classify.Group {
	if len(rec.Pieces) == 0 {
		return classify.ThirdParty
	}
	return c.classifier.Classify(rec.Pieces[0])
}

// lessByGroup orders by (group, original index): a stable partition into the
// three groups that keeps the encountered order within each group.
func lessByGroup(a, b keyedRecord) bool {
	if a.group != b.group {
		return a.group < b.group
	}
	return a.Index < b.Index
}

// lessByGroupAlpha orders by (group, dotted pieces, rendered text).
// Records with identical keys keep their encountered order through the
// stable sort; no further tie-break is defined.
func lessByGroupAlpha(a, b keyedRecord) bool {
	if a.group != b.group {
		return a.group < b.group
	}
	if cmp := slices.Compare(a.Pieces, b.Pieces); cmp != 0 {
		return cmp < 0
	}
	return a.Text < b.Text
}

func sortedTexts(keyed []keyedRecord, less func(a, b keyedRecord) bool) []string {
	ordered := make([]keyedRecord, len(keyed))
	copy(ordered, keyed)
	sort.SliceStable(ordered, func(i, j int) bool { return less(ordered[i], ordered[j]) })

	texts := make([]string, len(ordered))
	for i, rec := range ordered {
		texts[i] = rec.Text
	}
	return texts
}

func (c *ImportChecker) reportOrder(code string, m *pytree.Module, actual, expected []string) {
	c.report(code, m.Loc(), indent(actual), indent(expected), unifiedDiff(actual, expected))
}

// indent renders a list one entry per line, each two-space-indented.
func indent(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "  " + line
	}
	return strings.Join(out, "\n")
}

func unifiedDiff(actual, expected []string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(actual),
		B:        withNewlines(expected),
		FromFile: "actual",
		ToFile:   "expected",
		Context:  3,
	})
	if err != nil {
		// Diffing in-memory string slices cannot fail in practice.
		return ""
	}
	return diff
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
