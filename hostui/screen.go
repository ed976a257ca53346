// Package hostui is a concrete Host Interface implementation (spec §6):
// it drives the picker engine against a real terminal using the teacher's
// own terminal/tui cell-buffer toolkit, rather than leaving window
// management, key handling, and pixel-level rendering as an abstract
// contract. It is deliberately the only package that knows about floating
// regions, borders, and key escape sequences; the picker core never
// imports it.
package hostui

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/vim-fall/fall.vim/core"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/picker"
	"github.com/vim-fall/fall.vim/status"
	"github.com/vim-fall/fall.vim/terminal"
	"github.com/vim-fall/fall.vim/terminal/tui"
)

// Screen owns the terminal, the cell buffer, and every picker Component
// (list, preview, input line, help overlay). One Screen serves one
// Picker invocation at a time; nested action-selection pickers reuse the
// same Screen (spec §4.12: "sharing the same chrome").
type Screen struct {
	term terminal.Terminal

	mu     sync.Mutex
	cells  []terminal.Cell
	width  int
	height int

	theme tui.Theme

	cmdline string
	cmdpos  int

	window    []item.Item
	selection item.Selection
	line      int

	preview *item.PreviewPayload

	helpOpen   bool
	helpScroll *tui.ViewportScroll
	helpText   []string

	dirty     atomic.Bool
	redrawReq chan struct{}
	frame     atomic.Int64

	dispatch func(events.Event)
	cancel   func()
	metrics  *status.Registry
}

// New wraps an already-initialized terminal.Terminal (Init must already
// have been called by the caller, so the terminal's dimensions are known
// before Screen sizes its cell buffer).
func New(term terminal.Terminal) *Screen {
	w, h := term.Size()
	s := &Screen{
		term:       term,
		width:      w,
		height:     h,
		cells:      make([]terminal.Cell, w*h),
		theme:      tui.DefaultTheme,
		selection:  item.NewSelection(),
		redrawReq:  make(chan struct{}, 1),
		helpScroll: tui.NewViewportScroll(),
	}
	return s
}

// Bind attaches the Picker this screen drives: dispatch delivers
// host-originated events, cancel ends the picker (Esc). Called once,
// before Run.
func (s *Screen) Bind(p *picker.Picker) {
	s.dispatch = p.Dispatch
	s.cancel = p.Cancel
	s.metrics = p.Metrics()
}

// RequestRedraw implements picker.Host. The orchestrator calls this once
// per tick after every component's Render has already run (spec §4.12's
// render cycle): since Screen's own Render flushes the terminal
// synchronously rather than deferring to a separate paint pass, there is
// nothing left to do here. A no-op, not a stub: re-arming the dirty flag
// from this call would make every redraw request another one forever.
func (s *Screen) RequestRedraw() {}

// markDirty flags the cell buffer for recomposition on the next Render
// call. Called by every component-state setter (SetWindow, SetPayload,
// ...) and by terminal resize, never by the picker.Host interface itself.
func (s *Screen) markDirty() {
	s.dirty.Store(true)
	select {
	case s.redrawReq <- struct{}{}:
	default:
	}
}

// SeedCmdline preloads the cmdline buffer before the picker's first tick,
// so a resumed session's remembered query is re-applied without the user
// retyping it (spec §4.13's resume flow). Call before Bind/Run; after the
// picker is running, host-originated edits go through the key handlers
// instead.
func (s *Screen) SeedCmdline(query string) {
	s.mu.Lock()
	s.cmdline = query
	s.cmdpos = len([]rune(query))
	s.mu.Unlock()
}

// Cmdline implements picker.InputDriver.
func (s *Screen) Cmdline() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmdline
}

// Cmdpos implements picker.InputDriver.
func (s *Screen) Cmdpos() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmdpos
}

// Run starts the background key-reading loop (spec §4.11's input()):
// translated key events are dispatched to the bound picker; resize events
// reflow the cell buffer. ctx bounds the loop's lifetime.
func (s *Screen) Run(ctx context.Context) {
	stop := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(stop)
		s.term.PostEvent(terminal.Event{Type: terminal.EventClosed})
	}()

	core.Go(func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			ev := s.term.PollEvent()
			if !s.handleTerminalEvent(ev) {
				return
			}
		}
	})
}

func (s *Screen) handleTerminalEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventClosed, terminal.EventError:
		return false
	case terminal.EventResize:
		s.mu.Lock()
		s.width, s.height = ev.Width, ev.Height
		s.cells = make([]terminal.Cell, s.width*s.height)
		s.mu.Unlock()
		s.markDirty()
	case terminal.EventKey:
		s.handleKey(ev)
	}
	return true
}
