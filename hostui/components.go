package hostui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/status"
	"github.com/vim-fall/fall.vim/terminal"
	"github.com/vim-fall/fall.vim/terminal/tui"
)

// SetWindow implements picker.ListComponent.
func (s *Screen) SetWindow(window []item.Item, selection item.Selection, line int) {
	s.mu.Lock()
	s.window = window
	s.selection = selection
	s.line = line
	s.mu.Unlock()
	s.markDirty()
}

// Execute implements picker.ListComponent / picker.PreviewComponent: the
// core treats these as an escape hatch for host-specific raw commands
// (spec §4.1 "list/preview escape-hatch commands"); this reference host
// has none defined, so it is a no-op.
func (s *Screen) Execute(command string) {}

// SetPayload implements picker.PreviewComponent.
func (s *Screen) SetPayload(payload *item.PreviewPayload) {
	s.mu.Lock()
	s.preview = payload
	s.mu.Unlock()
	s.markDirty()
}

// SetCmdline implements picker.InputComponent. The cmdline buffer is
// already owned by Screen's key-editing methods; this merely reconciles
// the picker's view after an event round-trip.
func (s *Screen) SetCmdline(v string) {
	s.mu.Lock()
	s.cmdline = v
	s.mu.Unlock()
	s.markDirty()
}

// SetCmdpos implements picker.InputComponent.
func (s *Screen) SetCmdpos(pos int) {
	s.mu.Lock()
	s.cmdpos = pos
	s.mu.Unlock()
	s.markDirty()
}

// Toggle implements picker.HelpComponent.
func (s *Screen) Toggle() {
	s.mu.Lock()
	s.helpOpen = !s.helpOpen
	s.helpScroll.ScrollTo(0)
	s.mu.Unlock()
	s.markDirty()
}

// Page implements picker.HelpComponent. amount is a signed page count;
// helpScroll's ViewportH (set by the previous render) gives PageUp/
// PageDown their row size, so paging tracks whatever height the help
// overlay last rendered at.
func (s *Screen) Page(amount int) {
	s.mu.Lock()
	for i := 0; i < amount; i++ {
		s.helpScroll.PageDown()
	}
	for i := 0; i > amount; i-- {
		s.helpScroll.PageUp()
	}
	s.mu.Unlock()
	s.markDirty()
}

// SetHelpText configures the lines shown by the help overlay (typically
// the action map's names plus the default keymap), called once by the
// host wiring layer before Run.
func (s *Screen) SetHelpText(lines []string) {
	s.mu.Lock()
	s.helpText = lines
	s.mu.Unlock()
}

// Render implements picker.Component for every one of the four
// components Screen plays: it is the single place the full frame is
// composited and flushed, since all four share one cell buffer. It
// returns dirty=true whenever anything changed since the last flush, so
// the orchestrator's render cycle (spec §4.12 step 4) can skip a flush on
// an idle tick.
func (s *Screen) Render(ctx context.Context) (bool, error) {
	if !s.dirty.Swap(false) {
		return false, nil
	}

	s.mu.Lock()
	width, height := s.width, s.height
	cmdline, cmdpos := s.cmdline, s.cmdpos
	window := append([]item.Item(nil), s.window...)
	selection := s.selection
	line := s.line
	preview := s.preview
	helpOpen, helpScroll, helpText := s.helpOpen, s.helpScroll, s.helpText
	theme := s.theme
	s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return true, nil
	}

	cells := make([]terminal.Cell, width*height)
	root := tui.NewRegion(cells, width, 0, 0, width, height)
	root.Fill(theme.Bg)

	inputH := 1
	listW, previewW := width, 0
	if width >= 60 {
		listW = width / 2
		previewW = width - listW
	}

	inputRegion, rest := tui.SplitVFixed(root, inputH)
	inputRegion.Input(0, tui.InputOpts{
		Label:    "> ",
		LabelFg:  theme.Fg,
		Text:     cmdline,
		Cursor:   cmdpos,
		CursorBg: theme.CursorBg,
		TextFg:   theme.Fg,
		Bg:       theme.Bg,
	})
	if s.metrics != nil && s.metrics.Floats.Get("collect.active").Get() != 0 {
		inputRegion.Spinner(inputRegion.W-1, 0, int(s.frame.Add(1)), theme.Warning)
	}

	bodyRegion, barRegion := rest, rest
	if rest.H > 1 {
		bodyRegion, barRegion = tui.SplitVFixed(rest, rest.H-1)
		renderStatusBar(barRegion, s.metrics, theme)
	}

	listRegion := bodyRegion.Sub(0, 0, listW, bodyRegion.H)
	renderList(listRegion, window, selection, line, theme)

	if previewW > 0 {
		previewRegion := bodyRegion.Sub(listW, 0, previewW, bodyRegion.H)
		renderPreview(previewRegion, preview, theme)
	}

	if helpOpen {
		renderHelp(root, helpText, helpScroll, theme)
	}

	s.mu.Lock()
	s.cells = cells
	s.mu.Unlock()

	s.term.Flush(cells, width, height)
	return true, nil
}

// renderList draws the picker's visible window. line is the 1-based row
// (spec §4.8: "line = cursor - offset + 1") the Render Processor reports
// for where the host should place its own cursor within the window.
func renderList(r tui.Region, window []item.Item, selection item.Selection, line int, theme tui.Theme) {
	items := make([]tui.ListItem, len(window))
	for i, it := range window {
		check := tui.CheckNone
		if selection.Has(it.ID) {
			check = tui.CheckFull
		}
		items[i] = tui.ListItem{
			Check:     check,
			CheckFg:   theme.Selected,
			Text:      it.DisplayLabel(),
			TextStyle: tui.Style{Fg: theme.Fg},
		}
	}
	r.List(items, line-1, 0, tui.ListOpts{
		CursorBg:  theme.CursorBg,
		DefaultBg: theme.Bg,
	})
}

// renderStatusBar shows the picker's live engine metrics
// (picker.Picker.Metrics): item counts per stage and the last stage
// durations from Registry.Floats, the current query from Registry.Strings,
// and the selection size/active flag from Registry.Ints/Bools — the same
// Range-over-every-kind idiom the host game uses for its own diagnostics
// overlay.
func renderStatusBar(r tui.Region, reg *status.Registry, theme tui.Theme) {
	if reg == nil || r.H < 1 {
		return
	}
	var pairs [][2]string
	reg.Strings.Range(func(key string, ptr *status.AtomicString) {
		pairs = append(pairs, [2]string{key, ptr.Load()})
	})
	reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		pairs = append(pairs, [2]string{key, fmt.Sprintf("%.0f", ptr.Get())})
	})
	reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		pairs = append(pairs, [2]string{key, fmt.Sprintf("%d", ptr.Load())})
	})
	reg.Bools.Range(func(key string, ptr *atomic.Bool) {
		pairs = append(pairs, [2]string{key, fmt.Sprintf("%t", ptr.Load())})
	})
	r.QuickStatusBar(0, pairs, theme.HintFg, theme.Fg, theme.HeaderBg)
}

func renderPreview(r tui.Region, payload *item.PreviewPayload, theme tui.Theme) {
	content := r.Pane(tui.PaneOpts{
		Title:    "preview",
		Border:   tui.LineSingle,
		BorderFg: theme.Border,
		Bg:       theme.Bg,
		TitleFg:  theme.HeaderFg,
	})
	if payload == nil {
		return
	}
	for y, line := range payload.Lines {
		if y >= content.H {
			break
		}
		content.Text(0, y, line, theme.Fg, theme.Bg, terminal.AttrNone)
	}
}

func renderHelp(r tui.Region, lines []string, scroll *tui.ViewportScroll, theme tui.Theme) {
	result := r.Overlay(tui.DefaultOverlayOpts("help"))
	content := result.Content
	scroll.SetDimensions(len(lines), content.H)
	start := scroll.Offset
	for y := 0; y < content.H && start+y < len(lines); y++ {
		content.Text(0, y, lines[start+y], theme.Fg, theme.Bg, terminal.AttrNone)
	}
}

// DefaultHelpText renders a plain keymap summary plus the registered
// action names, for hosts that don't supply their own.
func DefaultHelpText(actionNames []string) []string {
	lines := []string{
		"enter    accept default action",
		"ctrl-space  open action picker",
		"tab      toggle selection, move down",
		"ctrl-a   toggle select all",
		"up/down, ctrl-p/ctrl-n  move cursor",
		"ctrl-u/ctrl-d  move cursor by the scroll step (DefaultListScroll rows)",
		"ctrl-t   switch matcher",
		"ctrl-s   switch sorter",
		"ctrl-r   switch renderer",
		"ctrl-v   switch previewer",
		"f1       toggle this help",
		"esc      cancel",
		"",
		"actions: " + strings.Join(actionNames, ", "),
	}
	return lines
}
