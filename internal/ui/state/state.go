package state

import (
	"lookup/internal/domain"
)

// Widget contains all the mutable state of one selector instance.
// Transitions in the logic package take a Widget by value and return the
// next one, so a Widget is never shared between two owners.
type Widget struct {
	// Overlay visibility
	Visible bool
	Hiding  bool   // close transition still running, Query not yet cleared
	Session uint64 // bumped on every open so stale hide messages can be told apart

	// Search state
	Query   string
	Results []domain.Item // subsequence of the data currently displayed

	// List navigation
	Cursor int // highlighted row in Results, -1 when Results is empty
	Offset int // first visible row
}

// NewWidget creates a closed widget showing the given data
func NewWidget(data []domain.Item) Widget {
	w := Widget{
		Results: data,
	}
	w.ClampCursor()
	return w
}

// Highlighted returns the item under the cursor
func (w Widget) Highlighted() (domain.Item, bool) {
	if w.Cursor < 0 || w.Cursor >= len(w.Results) {
		return nil, false
	}
	return w.Results[w.Cursor], true
}

// ClampCursor keeps the cursor inside Results
func (w *Widget) ClampCursor() {
	if len(w.Results) == 0 {
		w.Cursor = -1
		w.Offset = 0
		return
	}
	if w.Cursor < 0 {
		w.Cursor = 0
	}
	if w.Cursor >= len(w.Results) {
		w.Cursor = len(w.Results) - 1
	}
	if w.Offset > w.Cursor {
		w.Offset = w.Cursor
	}
	if w.Offset < 0 {
		w.Offset = 0
	}
}
