package logic

import (
	"lookup/internal/ui/state"
)

// Direction represents cursor movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Move moves the cursor through the results and scrolls the window of
// visible rows so the cursor stays inside it
func Move(s state.Widget, dir Direction, visibleRows int) state.Widget {
	if !s.Visible || len(s.Results) == 0 {
		return s
	}
	if visibleRows < 1 {
		visibleRows = 1
	}

	switch dir {
	case DirectionUp:
		s.Cursor--
	case DirectionDown:
		s.Cursor++
	case DirectionPageUp:
		s.Cursor -= visibleRows
	case DirectionPageDown:
		s.Cursor += visibleRows
	case DirectionHome:
		s.Cursor = 0
	case DirectionEnd:
		s.Cursor = len(s.Results) - 1
	}
	s.ClampCursor()
	return EnsureVisible(s, visibleRows)
}

// EnsureVisible adjusts the offset so the cursor row is on screen
func EnsureVisible(s state.Widget, visibleRows int) state.Widget {
	if s.Cursor < 0 {
		s.Offset = 0
		return s
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	if s.Cursor < s.Offset {
		s.Offset = s.Cursor
	}
	if s.Cursor >= s.Offset+visibleRows {
		s.Offset = s.Cursor - visibleRows + 1
	}
	maxOffset := len(s.Results) - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	return s
}

// VisibleRange returns the half-open range of result rows on screen
func VisibleRange(s state.Widget, visibleRows int) (int, int) {
	start := s.Offset
	if start < 0 {
		start = 0
	}
	end := start + visibleRows
	if end > len(s.Results) {
		end = len(s.Results)
	}
	if start > end {
		start = end
	}
	return start, end
}
