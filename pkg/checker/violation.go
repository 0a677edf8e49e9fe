package checker

import (
	"github.com/ecstyle/import-checker/pkg/messages"
	"github.com/ecstyle/import-checker/pkg/pytree"
)

// Violation is one diagnostic handed to the host's reporting sink. It is
// constructed, reported and dropped; the checker retains nothing.
type Violation struct {
	Code string
	Loc  pytree.Loc
	Args []any
}

// Message renders the violation through the message catalog.
func (v Violation) Message() string {
	return messages.Format(v.Code, v.Args...)
}

// Reporter is the host's diagnostic sink. Violations are advisory; emitting
// one never stops further analysis of the same or later modules.
type Reporter interface {
	Report(v Violation)
}
