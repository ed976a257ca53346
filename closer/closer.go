// Package closer provides a stack-structured disposal guard: windows,
// processors, and subscriptions register a teardown func as they're
// acquired, and a single Close unwinds them in reverse order on every exit
// path (success, cancel, error). It generalizes the teacher's
// defer-per-resource discipline (main.go's `defer screen.Fini()`,
// ClockScheduler's `defer cs.wg.Wait()`) into a reusable stack, since the
// picker opens a dynamic number of windows (outer list + preview + help +
// a nested action picker) that a fixed sequence of defers can't express.
package closer

import "sync"

// Stack is a LIFO set of cleanup functions.
type Stack struct {
	mu     sync.Mutex
	funcs  []func() error
	closed bool
}

// New creates an empty disposal stack.
func New() *Stack {
	return &Stack{}
}

// Push registers fn to run (before any previously pushed fn) when Close is
// called. If the stack is already closed, fn runs immediately.
func (s *Stack) Push(fn func() error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = fn()
		return
	}
	s.funcs = append(s.funcs, fn)
	s.mu.Unlock()
}

// Close unwinds every registered function in reverse (most-recently-pushed
// first) order, collecting and returning the first error encountered while
// still running every remaining function. Safe to call more than once;
// subsequent calls are no-ops.
func (s *Stack) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	funcs := s.funcs
	s.funcs = nil
	s.mu.Unlock()

	var first error
	for i := len(funcs) - 1; i >= 0; i-- {
		if err := funcs[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
