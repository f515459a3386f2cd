// Package correction computes fixes and assists for Go source files.
//
// A Producer is configured with a Context describing one file plus a
// selection or diagnostic, then computes at most one edit into a
// change.Builder. A MultiProducer yields several configured producers.
// The Processor drives registered producers and isolates their failures.
package correction

import (
	"fmt"

	"github.com/yaklabco/gocorrect/pkg/change"
)

// Priorities order corrections offered for the same location.
const (
	PriorityLow     = 30
	PriorityDefault = 50
	PriorityHigh    = 70
)

// Kind describes a class of correction. The zero Kind means "absent".
type Kind struct {
	// ID is a stable dotted identifier such as "fix.removeUnusedImport".
	ID string

	// Priority ranks competing corrections; higher comes first.
	Priority int

	// Message is a fmt template filled by a producer's arguments.
	Message string
}

// IsZero reports whether the kind is absent.
func (k Kind) IsZero() bool {
	return k.ID == ""
}

// Format fills the message template with args.
func (k Kind) Format(args ...any) string {
	if len(args) == 0 {
		return k.Message
	}
	return fmt.Sprintf(k.Message, args...)
}

// Correction is one computed fix or assist.
type Correction struct {
	// ProducerID is the registry ID of the producer that computed it.
	ProducerID string

	Kind    Kind
	Message string
	Change  *change.SourceChange
}
