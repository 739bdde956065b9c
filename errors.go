package pentrace

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a pipeline error. ProjectionFailure is deliberately absent
// from this taxonomy: a failed per-trace projection is reported by
// returning a nil *Trace3D from Project, not by an error value (spec §7).
type Kind int

const (
	// Fatal marks a violated internal invariant; the caller should abort.
	Fatal Kind = iota
	// InvalidInput marks malformed input: empty palette, zero-size texture,
	// a mesh without UVs, or an unsupported file format.
	InvalidInput
	// IoError marks a failure to open, read or write a file.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case IoError:
		return "IoError"
	case Fatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across stage boundaries. It carries the
// stage name so the CLI can print a single-line "stage: message" diagnostic
// per spec §7.
type Error struct {
	Kind  Kind
	Stage string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// newErr builds an *Error wrapping cause with errors.Wrap so the original
// stack trace is preserved for debug logging.
func newErr(kind Kind, stage string, cause error) *Error {
	return &Error{Kind: kind, Stage: stage, cause: errors.Wrap(cause, stage)}
}

// newErrf builds an *Error from a formatted message, with no underlying cause.
func newErrf(kind Kind, stage, format string, args ...any) *Error {
	return &Error{Kind: kind, Stage: stage, cause: errors.Errorf(format, args...)}
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, defaulting
// to Fatal for unrecognized errors so callers never silently swallow a bug.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return Fatal
}
