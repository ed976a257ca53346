// Package config holds the picker engine's tunables. Like the teacher's
// constant/constants packages, these are plain named values rather than a
// reflection-driven config loader: the core has no user-customization file
// format of its own (that loader is an out-of-scope host concern, see
// spec.md §1), so a Go struct of defaults plus call-site overrides is the
// complete ambient configuration story.
package config

import "time"

const (
	// DefaultCollectThreshold caps the number of items a Collect run will
	// accept before stopping, matching the spec's 100_000 default.
	DefaultCollectThreshold = 100_000

	// DefaultChunkSize is the number of items a Chunker accumulates
	// before a flush is forced.
	DefaultChunkSize = 1_000

	// DefaultChunkInterval is the maximum time a partial chunk is held
	// before being flushed anyway.
	DefaultChunkInterval = 100 * time.Millisecond

	// DefaultMatchInterval is the cooperative delay awaited between
	// matcher chunks so the scheduler tick is never starved.
	DefaultMatchInterval = 10 * time.Millisecond

	// SchedulerInterval is the cadence of the picker's periodic tick.
	SchedulerInterval = 10 * time.Millisecond

	// PreviewDebounceDelay is how long the cursor must sit still before
	// the Preview Processor is started for the item underneath it.
	PreviewDebounceDelay = 150 * time.Millisecond

	// DefaultListScroll is the number of rows a "scroll" cursor move
	// advances, versus a plain single-row move.
	DefaultListScroll = 1

	// DefaultScrollOffset is the number of rows of padding kept between
	// the cursor and the edge of the visible window, when the window is
	// tall enough to afford it.
	DefaultScrollOffset = 0

	// SessionStoreCapacity bounds the in-memory session ring (§3, §8 S5).
	SessionStoreCapacity = 100

	// EventQueueCapacity is the bounded MPSC ring's capacity (rounded up
	// to the next power of two by lfq). Oldest events are dropped to make
	// room once the ring is full, matching the teacher's
	// overwrite-oldest-on-overflow event queue.
	EventQueueCapacity = 4096

	// ReservedNamePrefix marks picker/action/session names excluded from
	// user definition and from session persistence.
	ReservedNamePrefix = "@"

	// SelectActionName is the sentinel action name that opens the nested
	// action-selection picker instead of invoking an action directly.
	SelectActionName = "@select"
)

// PickerOptions configures a single picker invocation. Zero-value fields
// fall back to the Default* constants above.
type PickerOptions struct {
	Threshold     int
	ChunkSize     int
	ChunkInterval time.Duration
	MatchInterval time.Duration
	Incremental   bool

	Height       int
	ScrollOffset int

	PreviewDebounce time.Duration
}

// WithDefaults returns a copy of o with zero fields replaced by defaults.
func (o PickerOptions) WithDefaults() PickerOptions {
	if o.Threshold <= 0 {
		o.Threshold = DefaultCollectThreshold
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.ChunkInterval <= 0 {
		o.ChunkInterval = DefaultChunkInterval
	}
	if o.MatchInterval <= 0 {
		o.MatchInterval = DefaultMatchInterval
	}
	if o.PreviewDebounce <= 0 {
		o.PreviewDebounce = PreviewDebounceDelay
	}
	if o.Height <= 0 {
		o.Height = 10
	}
	return o
}

// IsReservedName reports whether name is excluded from user definition and
// session persistence (§3, §4.13).
func IsReservedName(name string) bool {
	return len(name) > 0 && name[0:1] == ReservedNamePrefix
}
