package correction

import (
	"errors"
	"fmt"
)

var (
	// ErrNilUnit is returned when a context is built without a resolved unit.
	ErrNilUnit = errors.New("correction: nil resolved unit")

	// ErrNilWorkspace is returned when a context is built without a workspace.
	ErrNilWorkspace = errors.New("correction: nil workspace")

	// ErrNoDiagnostic is returned when fixes are requested for a context
	// that carries no diagnostic.
	ErrNoDiagnostic = errors.New("correction: context has no diagnostic")
)

// errNotConfigured is the panic value for producers used before Configure.
var errNotConfigured = errors.New("correction: producer used before Configure")

// PanicError records a panic raised while a producer ran.
type PanicError struct {
	ProducerID string
	Value      any
	Stack      []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("producer %s panicked: %v", e.ProducerID, e.Value)
}

// Unwrap exposes a panic value that is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsNotConfigured reports whether err stems from using a producer before
// Configure.
func IsNotConfigured(err error) bool {
	return errors.Is(err, errNotConfigured)
}
