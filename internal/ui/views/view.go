package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RowView is one rendered list entry
type RowView struct {
	Index    int // position in the current results
	Label    string
	Selected bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Visible bool

	Trigger       TriggerVariant
	TriggerLabel  string
	CustomTrigger string // already rendered custom element

	Input      string // rendered search field
	Query      string
	Rows       []RowView
	FirstIndex int
	Matches    int
	Total      int
	InnerWidth int
	Help       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the trigger while closed and the full-screen overlay while open
func (r *Renderer) Render(vs ViewState) (string, OverlayLayout) {
	if !vs.Visible {
		return r.RenderTrigger(vs), OverlayLayout{}
	}
	return r.RenderOverlay(vs)
}

// RenderTrigger draws the active trigger variant
func (r *Renderer) RenderTrigger(vs ViewState) string {
	switch vs.Trigger {
	case TriggerHidden:
		return ""
	case TriggerCustom:
		return vs.CustomTrigger
	default:
		return r.styles.Button.Render(vs.TriggerLabel)
	}
}

// RenderOverlay draws the search field and result list centered on screen
func (r *Renderer) RenderOverlay(vs ViewState) (string, OverlayLayout) {
	inner := vs.InnerWidth
	if inner < 8 {
		inner = 8
	}

	var lines []string

	// Header: search field and close control
	closeMark := r.styles.CloseButton.Render("×")
	fieldWidth := inner - lipgloss.Width(closeMark) - 1
	field := r.styles.Input.Width(fieldWidth).MaxWidth(fieldWidth).Render(vs.Input)
	header := lipgloss.JoinHorizontal(lipgloss.Top, field, " ", closeMark)
	lines = append(lines, header)

	// Result list
	if len(vs.Rows) == 0 {
		msg := "No matches"
		if vs.Query != "" {
			msg = fmt.Sprintf("No matches. alt+enter selects %q", vs.Query)
		}
		lines = append(lines, r.styles.Empty.Render(runewidth.Truncate(msg, inner, "…")))
	}
	// Row styles may add borders or padding, so rows can span several lines
	heights := make([]int, 0, len(vs.Rows))
	rowsHeight, rowsWidth := 0, inner
	for _, row := range vs.Rows {
		rendered := r.renderRow(row, inner)
		lines = append(lines, rendered)
		heights = append(heights, lipgloss.Height(rendered))
		rowsHeight += lipgloss.Height(rendered)
		rowsWidth = max(rowsWidth, lipgloss.Width(rendered))
	}

	// Footer
	count := r.styles.Count.Render(fmt.Sprintf("%d/%d", vs.Matches, vs.Total))
	footer := count
	if vs.Help != "" {
		helpWidth := inner - lipgloss.Width(count) - 1
		if helpWidth > 0 {
			help := r.styles.Help.MaxWidth(helpWidth).Render(vs.Help)
			gap := inner - lipgloss.Width(help) - lipgloss.Width(count)
			if gap < 1 {
				gap = 1
			}
			footer = help + strings.Repeat(" ", gap) + count
		}
	}
	lines = append(lines, footer)

	box := r.styles.Content.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	screen, rect := r.popupRender.RenderPopupOverlay(box, vs.Width, vs.Height)

	// Content origin inside the box
	left := rect.X + r.styles.Content.GetMarginLeft() + r.styles.Content.GetBorderLeftSize() + r.styles.Content.GetPaddingLeft()
	top := rect.Y + r.styles.Content.GetMarginTop() + r.styles.Content.GetBorderTopSize() + r.styles.Content.GetPaddingTop()

	layout := OverlayLayout{
		Box:        rect,
		Close:      Rect{X: left + fieldWidth + 1, Y: top, Width: lipgloss.Width(closeMark), Height: 1},
		Rows:       Rect{X: left, Y: top + lipgloss.Height(header), Width: rowsWidth, Height: rowsHeight},
		FirstIndex: vs.FirstIndex,
		RowHeights: heights,
	}
	return screen, layout
}

func (r *Renderer) renderRow(row RowView, width int) string {
	label := runewidth.Truncate(row.Label, width, "…")
	if row.Selected {
		return r.styles.SelectedItem.Width(width).Render(label)
	}
	return r.styles.Item.Width(width).Render(label)
}
