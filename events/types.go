// Package events implements the picker engine's single global event queue
// (spec §4.1): a FIFO of tagged events, enqueued by any stage or the input
// driver, drained exactly once per scheduler tick.
package events

// Type identifies the kind of a picker Event. The set is closed and
// exhaustive (spec §4.1); a switch over Type that falls through to an
// unrecognized value is the one Fatal condition in §7's taxonomy.
type Type int

const (
	// CmdlineChanged carries a new command-line string.
	CmdlineChanged Type = iota
	// CmdposChanged carries a new command-line cursor position.
	CmdposChanged

	// MoveCursor moves the render cursor by a relative amount.
	MoveCursor
	// MoveCursorAt sets the render cursor to an absolute position.
	MoveCursorAt

	// SelectItem toggles/sets/clears selection for one item.
	SelectItem
	// SelectAllItems toggles/sets/clears selection over all matched items.
	SelectAllItems

	// SwitchMatcher moves the matcher belt by a relative amount.
	SwitchMatcher
	// SwitchMatcherAt sets the matcher belt to an absolute index.
	SwitchMatcherAt
	// SwitchSorter moves the sorter belt by a relative amount.
	SwitchSorter
	// SwitchSorterAt sets the sorter belt to an absolute index.
	SwitchSorterAt
	// SwitchRenderer moves the renderer belt by a relative amount.
	SwitchRenderer
	// SwitchRendererAt sets the renderer belt to an absolute index.
	SwitchRendererAt
	// SwitchPreviewer moves the previewer belt by a relative amount.
	SwitchPreviewer
	// SwitchPreviewerAt sets the previewer belt to an absolute index.
	SwitchPreviewerAt

	// ActionInvoke requests accept(name) with a specific action name.
	ActionInvoke

	// ListComponentExecute passes a raw host command through to the list component.
	ListComponentExecute
	// PreviewComponentExecute passes a raw host command through to the preview component.
	PreviewComponentExecute

	// HelpComponentToggle opens/closes the help overlay.
	HelpComponentToggle
	// HelpComponentPage pages the help overlay.
	HelpComponentPage

	// CollectStarted signals a Collect run has begun.
	CollectStarted
	// CollectUpdated signals a Collect chunk flush.
	CollectUpdated
	// CollectSucceeded signals a Collect run completed normally.
	CollectSucceeded
	// CollectFailed signals a Collect run ended in a non-cancellation error.
	CollectFailed

	// MatchStarted signals a Match run has begun.
	MatchStarted
	// MatchUpdated signals an incremental Match chunk flush.
	MatchUpdated
	// MatchSucceeded signals a Match run completed.
	MatchSucceeded
	// MatchFailed signals a Match run ended in a non-cancellation error.
	MatchFailed

	// SortStarted signals a Sort run has begun.
	SortStarted
	// SortSucceeded signals a Sort run completed.
	SortSucceeded
	// SortFailed signals a Sort run ended in a non-cancellation error.
	SortFailed

	// RenderStarted signals a Render run has begun.
	RenderStarted
	// RenderSucceeded signals a Render run completed; window is published.
	RenderSucceeded
	// RenderFailed signals a Render run ended in a non-cancellation error.
	RenderFailed

	// PreviewStarted signals a Preview run has begun.
	PreviewStarted
	// PreviewSucceeded signals a Preview run completed; payload is published.
	PreviewSucceeded
	// PreviewFailed signals a Preview run ended in a non-cancellation error.
	PreviewFailed
)

// Event is a single queued event with its payload.
type Event struct {
	Type    Type
	Payload any
}

// SelectMethod controls how a select event affects current selection state.
type SelectMethod int

const (
	SelectToggle SelectMethod = iota
	SelectOn
	SelectOff
)

// CmdlinePayload carries the new command-line string.
type CmdlinePayload struct {
	Cmdline string
}

// CmdposPayload carries the new command-line cursor position.
type CmdposPayload struct {
	Cmdpos int
}

// MoveCursorPayload moves the cursor relatively, optionally by the "scroll" stride.
type MoveCursorPayload struct {
	Amount int
	Scroll bool
}

// MoveCursorAtPayload sets the cursor absolutely. Last means the "$" sentinel.
type MoveCursorAtPayload struct {
	Cursor int
	Last   bool
}

// SelectItemPayload selects/deselects a single item.
type SelectItemPayload struct {
	HasCursor bool
	Cursor    int
	Method    SelectMethod
}

// SelectAllItemsPayload selects/deselects across all matched items.
type SelectAllItemsPayload struct {
	Method SelectMethod
}

// SwitchPayload moves a stage belt relatively, optionally cycling at the ends.
type SwitchPayload struct {
	Amount int
	Cycle  bool
}

// SwitchAtPayload sets a stage belt absolutely. Last means the "$" sentinel.
type SwitchAtPayload struct {
	Index int
	Last  bool
}

// ActionInvokePayload names the action to accept().
type ActionInvokePayload struct {
	Name string
}

// HelpPagePayload pages the help overlay by amount (pages or lines,
// interpreted by the help component).
type HelpPagePayload struct {
	Amount int
}

// ComponentExecutePayload passes a raw host command through to a component.
type ComponentExecutePayload struct {
	Command string
}

// FailedPayload carries a stage failure. Err == nil means cancellation and
// must be ignored per §7; non-nil Err is logged and shown as a failure
// indicator.
type FailedPayload struct {
	Err error
}
