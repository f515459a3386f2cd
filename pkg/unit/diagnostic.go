package unit

import (
	"fmt"

	"github.com/yaklabco/gocorrect/pkg/source"
)

// Severity ranks a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic codes understood by the bundled producers.
const (
	CodeSyntaxError       = "syntax-error"
	CodeTypeError         = "type-error"
	CodeUnusedImport      = "unused-import"
	CodeUnusedVariable    = "unused-var"
	CodeMissingSwitchCase = "missing-switch-case"
)

// Diagnostic is a problem reported against a span of a file.
type Diagnostic struct {
	Code     string
	Message  string
	Offset   int
	Length   int
	Severity Severity

	// Source names the analysis that reported the diagnostic.
	Source string
}

// Range returns the span the diagnostic covers.
func (d Diagnostic) Range() source.Range {
	return source.NewRange(d.Offset, d.Length)
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Range(), d.Code, d.Message)
}
