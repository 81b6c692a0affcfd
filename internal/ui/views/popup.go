package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// OverlayLayout records where the overlay's interactive parts ended up on
// screen so mouse input can be mapped back to them
type OverlayLayout struct {
	Box        Rect  // the whole overlay including its border
	Close      Rect  // the close control
	Rows       Rect  // the list rows
	FirstIndex int   // result index shown on the first list row
	RowHeights []int // lines taken by each row, top to bottom; nil means one line each
}

// RowAt returns the result index under (x, y)
func (l OverlayLayout) RowAt(x, y int) (int, bool) {
	if !l.Rows.Contains(x, y) {
		return 0, false
	}
	if l.RowHeights == nil {
		return l.FirstIndex + (y - l.Rows.Y), true
	}
	top := l.Rows.Y
	for i, h := range l.RowHeights {
		if y < top+h {
			return l.FirstIndex + i, true
		}
		top += h
	}
	return 0, false
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the styled popup on a backdrop filling the
// screen and returns where the popup box landed
func (pr *PopupRenderer) RenderPopupOverlay(popup string, width, height int) (string, Rect) {
	boxW := lipgloss.Width(popup)
	boxH := lipgloss.Height(popup)

	// Before the first window size message there is nothing to center in
	if width <= 0 || height <= 0 {
		return popup, Rect{Width: boxW, Height: boxH}
	}

	// lipgloss.Place puts the extra cell of an odd gap after the content
	x := (width - boxW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - boxH) / 2
	if y < 0 {
		y = 0
	}

	screen := lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		popup,
		lipgloss.WithWhitespaceChars(pr.styles.BackdropChar),
		lipgloss.WithWhitespaceForeground(pr.styles.Backdrop.GetForeground()),
	)
	return screen, Rect{X: x, Y: y, Width: boxW, Height: boxH}
}
