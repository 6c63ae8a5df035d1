package pdfpress

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the engine executable cannot be found or is not
// executable. Returned (wrapped) by Validate and by conversion operations
// that fail before the engine starts.
var ErrUnavailable = errors.New("pdfpress: engine unavailable")

// OptionError reports a rejected option value. It is returned by the strict
// setters on Options before any process is started; the prior value of the
// option is left unchanged.
//
// Only out-of-range scalars produce an OptionError. Unrecognized enumerated
// values (input type, raster format, TLS key type, ...) are silently replaced
// with their documented default instead. That asymmetry is part of the
// option surface's contract.
type OptionError struct {
	// Option is the engine flag name without the leading dashes,
	// e.g. "http-timeout".
	Option string

	// Value is the rejected value in its string form.
	Value string

	// Reason describes the accepted range.
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("pdfpress: option --%s: invalid value %q: %s", e.Option, e.Value, e.Reason)
}

// LaunchError indicates the engine process could not be started at all
// (missing executable, permission denied, resource exhaustion). It is a hard
// failure distinct from an unsuccessful conversion, which is reported through
// [Result.Success] instead. Wraps the underlying error so consumers can
// errors.As to OS-level detail.
type LaunchError struct {
	// Path is the engine executable path that failed to launch.
	Path string

	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("pdfpress: launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
