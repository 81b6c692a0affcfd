package logic

import (
	"lookup/internal/domain"
	"lookup/internal/ui/state"
)

// OutcomeKind says which callback, if any, a transition asks for
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeSelect
	OutcomeCancel
)

// Outcome is the single callback invocation produced by a transition
type Outcome struct {
	Kind      OutcomeKind
	Item      domain.Item         // set for OutcomeSelect
	Synthetic bool                // OutcomeSelect built from typed text
	Reason    domain.CancelReason // set for OutcomeCancel
}

// Closed reports whether the transition closed the overlay
func (o Outcome) Closed() bool {
	return o.Kind != OutcomeNone
}

// Open makes the overlay visible with the full current data and an empty
// query. Opening an already open overlay changes nothing.
func Open(s state.Widget, data []domain.Item) state.Widget {
	if s.Visible {
		return s
	}
	s.Visible = true
	s.Hiding = false
	s.Session++
	s.Query = ""
	s.Results = data
	s.Cursor = 0
	s.Offset = 0
	s.ClampCursor()
	return s
}

// ChangeQuery records new query text and recomputes the results.
// It is ignored while the overlay is closed.
func ChangeQuery(s state.Widget, query string, data []domain.Item, strategy FilterStrategy) state.Widget {
	if !s.Visible {
		return s
	}
	s.Query = query
	s.Results = strategy.Filter(query, data)
	s.Cursor = 0
	s.Offset = 0
	s.ClampCursor()
	return s
}

// Refresh recomputes the results of an open overlay after the data changed
func Refresh(s state.Widget, data []domain.Item, strategy FilterStrategy) state.Widget {
	if !s.Visible {
		s.Results = data
		s.ClampCursor()
		return s
	}
	if s.Query == "" {
		s.Results = data
	} else {
		s.Results = strategy.Filter(s.Query, data)
	}
	s.ClampCursor()
	return s
}

// Select closes the overlay with the result at index
func Select(s state.Widget, index int) (state.Widget, Outcome) {
	if !s.Visible || index < 0 || index >= len(s.Results) {
		return s, Outcome{}
	}
	item := s.Results[index]
	return beginClose(s), Outcome{Kind: OutcomeSelect, Item: item}
}

// Submit commits the typed text as the selection. It only fires when no
// result matches; otherwise the user is expected to pick from the list.
func Submit(s state.Widget) (state.Widget, Outcome) {
	if !s.Visible || len(s.Results) > 0 {
		return s, Outcome{}
	}
	item := domain.SyntheticItem(s.Query)
	return beginClose(s), Outcome{Kind: OutcomeSelect, Item: item, Synthetic: true}
}

// Confirm is the Enter key: pick the highlighted row when there is one,
// submit the typed text otherwise
func Confirm(s state.Widget) (state.Widget, Outcome) {
	if len(s.Results) > 0 {
		return Select(s, s.Cursor)
	}
	return Submit(s)
}

// Cancel closes the overlay without a selection
func Cancel(s state.Widget, reason domain.CancelReason) (state.Widget, Outcome) {
	if !s.Visible {
		return s, Outcome{}
	}
	return beginClose(s), Outcome{Kind: OutcomeCancel, Reason: reason}
}

// Hidden finishes the close transition of the given session and clears
// the query. Hide notices from an earlier session are ignored.
func Hidden(s state.Widget, session uint64, data []domain.Item) (state.Widget, bool) {
	if s.Visible || !s.Hiding || session != s.Session {
		return s, false
	}
	s.Hiding = false
	s.Query = ""
	s.Results = data
	s.Cursor = 0
	s.Offset = 0
	s.ClampCursor()
	return s, true
}

func beginClose(s state.Widget) state.Widget {
	s.Visible = false
	s.Hiding = true
	return s
}
