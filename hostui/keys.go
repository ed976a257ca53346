package hostui

import (
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/terminal"
)

// handleKey translates one raw terminal key event into either a direct
// edit of the cmdline buffer (picker.InputDriver is polled for the result
// next tick, per spec §4.11) or a Dispatch of a picker event (spec
// §4.12's event table). It is the sole place that knows the picker's
// default keymap; a host embedding Screen in a richer UI would replace
// this with its own key-to-action mapping.
func (s *Screen) handleKey(ev terminal.Event) {
	if s.helpOpen {
		s.handleHelpKey(ev)
		return
	}

	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		if s.cancel != nil {
			s.cancel()
		}
		return

	case terminal.KeyEnter:
		s.dispatchEvent(events.ActionInvoke, events.ActionInvokePayload{Name: "default"})
		return

	case terminal.KeyCtrlSpace:
		s.dispatchEvent(events.ActionInvoke, events.ActionInvokePayload{Name: "@select"})
		return

	case terminal.KeyUp, terminal.KeyCtrlP:
		s.dispatchEvent(events.MoveCursor, events.MoveCursorPayload{Amount: -1})
		return
	case terminal.KeyDown, terminal.KeyCtrlN:
		s.dispatchEvent(events.MoveCursor, events.MoveCursorPayload{Amount: 1})
		return
	case terminal.KeyPageUp, terminal.KeyCtrlU:
		s.dispatchEvent(events.MoveCursor, events.MoveCursorPayload{Amount: -1, Scroll: true})
		return
	case terminal.KeyPageDown, terminal.KeyCtrlD:
		s.dispatchEvent(events.MoveCursor, events.MoveCursorPayload{Amount: 1, Scroll: true})
		return
	case terminal.KeyHome:
		s.dispatchEvent(events.MoveCursorAt, events.MoveCursorAtPayload{Cursor: 0})
		return
	case terminal.KeyEnd:
		s.dispatchEvent(events.MoveCursorAt, events.MoveCursorAtPayload{Last: true})
		return

	case terminal.KeyTab:
		s.dispatchEvent(events.SelectItem, events.SelectItemPayload{Method: events.SelectToggle})
		s.dispatchEvent(events.MoveCursor, events.MoveCursorPayload{Amount: 1})
		return
	case terminal.KeyCtrlA:
		s.dispatchEvent(events.SelectAllItems, events.SelectAllItemsPayload{Method: events.SelectToggle})
		return

	case terminal.KeyCtrlT:
		s.dispatchEvent(events.SwitchMatcher, events.SwitchPayload{Amount: 1, Cycle: true})
		return
	case terminal.KeyCtrlS:
		s.dispatchEvent(events.SwitchSorter, events.SwitchPayload{Amount: 1, Cycle: true})
		return
	case terminal.KeyCtrlR:
		s.dispatchEvent(events.SwitchRenderer, events.SwitchPayload{Amount: 1, Cycle: true})
		return
	case terminal.KeyCtrlV:
		s.dispatchEvent(events.SwitchPreviewer, events.SwitchPayload{Amount: 1, Cycle: true})
		return

	case terminal.KeyF1:
		s.dispatchEvent(events.HelpComponentToggle, nil)
		return

	case terminal.KeyBackspace, terminal.KeyCtrlH:
		s.editBackspace()
		return
	case terminal.KeyDelete:
		s.editDelete()
		return
	case terminal.KeyLeft:
		s.editMoveCursor(-1)
		return
	case terminal.KeyRight:
		s.editMoveCursor(1)
		return

	case terminal.KeyRune:
		s.editInsert(ev.Rune)
		return
	}
}

func (s *Screen) handleHelpKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyF1, terminal.KeyEnter:
		s.dispatchEvent(events.HelpComponentToggle, nil)
	case terminal.KeyUp, terminal.KeyCtrlP:
		s.dispatchEvent(events.HelpComponentPage, events.HelpPagePayload{Amount: -1})
	case terminal.KeyDown, terminal.KeyCtrlN:
		s.dispatchEvent(events.HelpComponentPage, events.HelpPagePayload{Amount: 1})
	case terminal.KeyPageUp:
		s.dispatchEvent(events.HelpComponentPage, events.HelpPagePayload{Amount: -5})
	case terminal.KeyPageDown:
		s.dispatchEvent(events.HelpComponentPage, events.HelpPagePayload{Amount: 5})
	}
}

func (s *Screen) dispatchEvent(typ events.Type, payload any) {
	if s.dispatch == nil {
		return
	}
	s.dispatch(events.Event{Type: typ, Payload: payload})
}

func (s *Screen) editInsert(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	runes := []rune(s.cmdline)
	pos := clampRunes(s.cmdpos, len(runes))
	runes = append(runes[:pos], append([]rune{r}, runes[pos:]...)...)
	s.cmdline = string(runes)
	s.cmdpos = pos + 1
}

func (s *Screen) editBackspace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	runes := []rune(s.cmdline)
	pos := clampRunes(s.cmdpos, len(runes))
	if pos == 0 {
		return
	}
	runes = append(runes[:pos-1], runes[pos:]...)
	s.cmdline = string(runes)
	s.cmdpos = pos - 1
}

func (s *Screen) editDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	runes := []rune(s.cmdline)
	pos := clampRunes(s.cmdpos, len(runes))
	if pos >= len(runes) {
		return
	}
	runes = append(runes[:pos], runes[pos+1:]...)
	s.cmdline = string(runes)
}

func (s *Screen) editMoveCursor(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	runes := []rune(s.cmdline)
	s.cmdpos = clampRunes(s.cmdpos+delta, len(runes))
}

func clampRunes(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
