//go:build unix

package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vim-fall/fall.vim/terminal"
)

// HandleCrash is the unified panic handler for the picker engine: it
// restores the terminal (raw mode, alternate screen, cursor) before
// printing the stack trace, so a panic inside a processor's goroutine
// never leaves the invoking shell in a broken state.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashTerminal != nil {
		crashTerminal.Fini()
	} else {
		// No terminal registered yet (panic before picker.Open completed,
		// or a picker embedding that never called RegisterCrashTerminal):
		// reset stdout directly so the crash message below is legible.
		terminal.EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mpicker crashed: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
