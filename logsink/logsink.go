// Package logsink implements the two error surfaces spec §6/§7 require:
// a user-visible message channel for expected, user-fixable errors (bad
// picker name, unknown action, missing session, reserved-name violation)
// and a developer log channel for everything else. The user channel is
// colorized the way the datalog engine in the example pack colorizes its
// query-plan annotations (arrows in yellow, costs in red); the developer
// channel is a plain timestamped line, since it is meant for a log file
// or terminal scrollback, not a single-line echo.
package logsink

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/vim-fall/fall.vim/errs"
)

// Sink is the picker engine's two-channel error/message surface.
type Sink struct {
	userOut io.Writer
	devLog  *log.Logger

	warn  *color.Color
	err   *color.Color
	plain *color.Color
}

// New creates a Sink writing user-facing messages to userOut (typically
// the host's command-line echo area, or stderr outside a host) and
// developer-facing lines through a standard log.Logger writing to devOut.
func New(userOut, devOut io.Writer) *Sink {
	if userOut == nil {
		userOut = os.Stderr
	}
	if devOut == nil {
		devOut = os.Stderr
	}
	return &Sink{
		userOut: userOut,
		devLog:  log.New(devOut, "fall: ", log.LstdFlags),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		plain:   color.New(color.FgWhite),
	}
}

// Expected echoes a user-fixable error as a single colorized line (spec
// §7: "Expected errors raised out of dispatcher entry points are
// translated to a single-line echo to the user"). A nil error or a
// cancellation (errs.IsCancelled) is dropped without an echo.
func (s *Sink) Expected(err error) {
	if err == nil || errs.IsCancelled(err) {
		return
	}
	fmt.Fprintln(s.userOut, s.err.Sprintf("fall: %v", err))
}

// Notice echoes an informational, non-error message to the user channel
// (e.g. "session saved", "3 items selected"), colorized like the
// datalog engine's plan annotations rather than flagged as an error.
func (s *Sink) Notice(format string, args ...any) {
	fmt.Fprintln(s.userOut, s.warn.Sprintf(format, args...))
}

// Developer logs an unexpected error to the developer channel (spec §7's
// "developer log channel"), never shown to the end user. Cancellation is
// filtered the same way as Expected.
func (s *Sink) Developer(err error) {
	if err == nil || errs.IsCancelled(err) {
		return
	}
	s.devLog.Printf("%v", err)
}

// Developerf logs a formatted developer-channel message.
func (s *Sink) Developerf(format string, args ...any) {
	s.devLog.Printf(format, args...)
}
