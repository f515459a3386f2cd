// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError    = "error"
	FieldPath     = "path"
	FieldDuration = "duration"
	FieldJobs     = "jobs"
	FieldFiles    = "files"

	// Correction fields.
	FieldProducer    = "producer"
	FieldKind        = "kind"
	FieldCode        = "code"
	FieldOffset      = "offset"
	FieldLength      = "length"
	FieldNode        = "node"
	FieldCorrections = "corrections"
	FieldReason      = "reason"

	// Batch fields.
	FieldRequests = "requests"
	FieldFailed   = "failed"
)
