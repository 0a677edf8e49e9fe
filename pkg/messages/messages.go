// Package messages defines the checker's diagnostic catalog: message codes,
// their format templates and the PEP 8 help text behind each rule.
package messages

import "fmt"

// CheckerName identifies the checker to a host linting engine.
const CheckerName = "ec_imports"

// Priority orders the checker relative to the host's other checkers.
const Priority = -2

// Diagnostic codes.
const (
	SeparateLines   = "C7001"
	TopOfFile       = "C7002"
	OutOfOrder      = "C7003"
	OutOfOrderAlpha = "C7004"
	RelativeImport  = "C7005"
)

// Definition is one catalog entry: the printf template of the emitted
// message and the longer help text.
type Definition struct {
	Template string
	Help     string
}

// Catalog maps every diagnostic code to its definition.
var Catalog = map[string]Definition{
	SeparateLines: {
		Template: "Imports should be on separate lines",
		Help: `PEP8: "Imports should usually be on separate lines", ` +
			`No: "import sys, os", Okay: "from subprocess import Popen, PIPE".`,
	},
	TopOfFile: {
		Template: "Imports should be at the top of the file",
		Help: `PEP8: "Imports are always put at the top of the file", ` +
			`checks that imports do not happen inside functions.`,
	},
	OutOfOrder: {
		Template: "Imports are out of order.\n\nFound:\n%s\n\nExpected:\n%s\n\nDiff:\n%s",
		Help: `PEP8: "Imports should be grouped in the following order: ` +
			`standard library imports, related third party imports, ` +
			`local application/library specific imports".`,
	},
	RelativeImport: {
		Template: "Relative imports are highly discouraged",
		Help: `PEP8: "Relative imports for intra-package imports are highly ` +
			`discouraged. Always use the absolute package path for all imports."`,
	},
}

func init() {
	base := Catalog[OutOfOrder]
	Catalog[OutOfOrderAlpha] = Definition{
		Template: base.Template,
		Help: base.Help + " This is a stricter version of C7003 which also " +
			"checks that imports are sorted alphabetically within each group.",
	}
}

// Format renders the message for code with the given template arguments.
// An unknown code renders as the code itself.
func Format(code string, args ...any) string {
	def, ok := Catalog[code]
	if !ok {
		return code
	}
	if len(args) == 0 {
		return def.Template
	}
	return fmt.Sprintf(def.Template, args...)
}
