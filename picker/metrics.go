package picker

import (
	"sync/atomic"
	"time"

	"github.com/vim-fall/fall.vim/status"
)

// metrics holds the Picker's cached status pointers, registered once at
// construction (status.Registry.Ints/Floats.Get), then written directly from the event
// handler with no further map lookups. Exercises all four of
// status.Registry's metric kinds: Floats for item counts and per-stage
// timings, Ints for the live selection size, Bools for whether anything
// is selected, and Strings for the query text a host status bar would
// echo next to the count.
type metrics struct {
	reg *status.Registry

	collected *status.AtomicFloat
	matched   *status.AtomicFloat
	sorted    *status.AtomicFloat
	window    *status.AtomicFloat

	collecting *status.AtomicFloat

	matchMs   *status.AtomicFloat
	sortMs    *status.AtomicFloat
	renderMs  *status.AtomicFloat
	previewMs *status.AtomicFloat

	selectedCount *atomic.Int64
	hasSelection  *atomic.Bool
	query         *status.AtomicString
}

func newMetrics() *metrics {
	reg := status.NewRegistry()
	return &metrics{
		reg:           reg,
		collected:     reg.Floats.Get("items.collected"),
		matched:       reg.Floats.Get("items.matched"),
		sorted:        reg.Floats.Get("items.sorted"),
		window:        reg.Floats.Get("items.window"),
		collecting:    reg.Floats.Get("collect.active"),
		matchMs:       reg.Floats.Get("stage.match_ms"),
		sortMs:        reg.Floats.Get("stage.sort_ms"),
		renderMs:      reg.Floats.Get("stage.render_ms"),
		previewMs:     reg.Floats.Get("stage.preview_ms"),
		selectedCount: reg.Ints.Get("selection.count"),
		hasSelection:  reg.Bools.Get("selection.active"),
		query:         reg.Strings.Get("input.query"),
	}
}

// recordSelection publishes the current selection size to the Ints and
// Bools metrics after every select-item/select-all-items event.
func (m *metrics) recordSelection(n int) {
	m.selectedCount.Store(int64(n))
	m.hasSelection.Store(n > 0)
}

// elapsedMs is a small helper so call sites read as a single statement:
// m.matchMs.Set(elapsedMs(start)).
func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// Metrics exposes the picker's live status registry (items collected,
// matched, sorted, windowed, and per-stage timings in milliseconds) for a
// host to render as a status bar (hostui.Screen does so in its metrics
// bar).
func (p *Picker) Metrics() *status.Registry {
	return p.metrics.reg
}
