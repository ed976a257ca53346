// Package errs holds the picker engine's error taxonomy: a small set of
// expected, user-fixable sentinels and the cancellation sentinel every
// processor checks before turning a failure into a *-failed event.
package errs

import "errors"

// Expected errors are user-fixable; dispatcher entry points translate
// them into a single-line echo rather than the developer log.
var (
	ErrUnknownPicker  = errors.New("fall: unknown picker")
	ErrUnknownAction  = errors.New("fall: unknown action")
	ErrUnknownSession = errors.New("fall: no matching session")
	ErrDisposed       = errors.New("fall: processor disposed")
	ErrReservedName   = errors.New("fall: name is reserved")
)

// Cancelled is the sentinel cancellation error. Stages compare against it
// with errors.Is before emitting a *-failed event: cancellation is
// silently dropped, never surfaced as a failure.
var Cancelled = errors.New("fall: cancelled")

// IsCancelled reports whether err is (or wraps) the cancellation sentinel.
func IsCancelled(err error) bool {
	return errors.Is(err, Cancelled)
}
