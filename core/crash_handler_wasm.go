//go:build wasm

package core

import (
	"fmt"
	"runtime/debug"
	"syscall/js"
)

// HandleCrash logs to the browser console instead of exiting the process:
// a WASM-hosted picker runs inside the page's event loop, so os.Exit has
// no meaningful target and the panic is re-raised instead.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashTerminal != nil {
		crashTerminal.Fini()
	}

	console := js.Global().Get("console")
	console.Call("error", fmt.Sprintf("picker crashed: %v", r))
	console.Call("error", fmt.Sprintf("stack trace:\n%s", debug.Stack()))

	panic(r)
}
