package textfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for textfmt package operations. Use errors.Is against
// these after a Parse failure; the returned error also carries the
// offending line number (see LineError).
var (
	// ErrMalformedLine indicates a field shorter than 3 chars or missing
	// the ':' separator (e.g. "u" or "uvalue" instead of "u:value").
	ErrMalformedLine = errors.New("textfmt: malformed field")

	// ErrMissingEndpoint indicates the mandatory u: or v: field is absent.
	ErrMissingEndpoint = errors.New("textfmt: missing source or target vertex")

	// ErrUnknownField indicates a field key outside {u,v,t,i,s,d,w}.
	ErrUnknownField = errors.New("textfmt: unknown field key")

	// ErrBadWeight indicates the w: field could not be parsed as a float.
	ErrBadWeight = errors.New("textfmt: malformed weight")
)

// LineError wraps a parse error with the 1-based source line number it
// occurred on. errors.Is/errors.As unwrap through it to the sentinel.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err, e.Line)
}

func (e *LineError) Unwrap() error { return e.Err }
