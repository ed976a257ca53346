// Package item defines the unit that flows through the picker pipeline
// (spec §3): the Item itself, its decorations, the resumable PickerContext
// snapshot, and the selection set.
package item

// Highlight names a decoration's display style, backed by the terminal/tui
// style vocabulary (tui.Style{Fg,Bg,Attr}) rather than a raw string, so
// renderers can't hand the host an unrecognized style name.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightMatch
	HighlightComment
	HighlightString
	HighlightError
	HighlightWarning
	HighlightTitle
)

// Decoration marks a span of a label for highlighting.
type Decoration struct {
	Line      int
	Column    int
	Length    int
	Highlight Highlight
}

// Item is a single unit flowing through Collect -> Match -> Sort -> Render
// -> Preview. ID is assigned once, by the Collect Processor, and never
// reused within a run; Value is the dedup/selection key.
type Item struct {
	ID    int
	Value string
	Detail any

	// Label defaults to Value when unset; Decorations default to empty.
	// Both are populated by the Render Processor before handing items to
	// the current Renderer.
	Label       string
	Decorations []Decoration

	// Score is assigned by the current Matcher; zero-value until matched.
	Score float64
}

// DisplayLabel returns Label if set, otherwise Value.
func (it Item) DisplayLabel() string {
	if it.Label != "" {
		return it.Label
	}
	return it.Value
}

// PreviewPayload is what a Previewer returns for the item under the cursor.
type PreviewPayload struct {
	Lines    []string
	Filetype string
}
