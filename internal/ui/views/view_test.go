package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTrigger(t *testing.T) {
	tests := []struct {
		name      string
		hide      bool
		hasCustom bool
		want      TriggerVariant
	}{
		{"default button", false, false, TriggerDefault},
		{"custom element", false, true, TriggerCustom},
		{"hidden", true, false, TriggerHidden},
		{"hide wins over custom", true, true, TriggerHidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTrigger(tt.hide, tt.hasCustom)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != TriggerHidden, got.Interactive())
		})
	}
}

func TestRenderTriggerVariants(t *testing.T) {
	r := NewRenderer(NewStyles())

	out, layout := r.Render(ViewState{Trigger: TriggerDefault, TriggerLabel: "Select"})
	assert.Contains(t, out, "Select")
	assert.Equal(t, OverlayLayout{}, layout)

	out, _ = r.Render(ViewState{Trigger: TriggerCustom, TriggerLabel: "Select", CustomTrigger: "[pick a fruit]"})
	assert.Equal(t, "[pick a fruit]", out)

	out, _ = r.Render(ViewState{Trigger: TriggerHidden, TriggerLabel: "Select", CustomTrigger: "[pick]"})
	assert.Empty(t, out)
}

func overlayState() ViewState {
	return ViewState{
		Width:      80,
		Height:     24,
		Visible:    true,
		Input:      "an",
		Query:      "an",
		InnerWidth: 40,
		Rows: []RowView{
			{Index: 0, Label: "Banana", Selected: true},
			{Index: 1, Label: "Mango"},
		},
		Matches: 2,
		Total:   3,
	}
}

func TestRenderOverlayCentersBox(t *testing.T) {
	r := NewRenderer(NewStyles())
	out, layout := r.Render(overlayState())

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 24)
	assert.Equal(t, 80, lipgloss.Width(out))

	assert.Contains(t, out, "Banana")
	assert.Contains(t, out, "Mango")
	assert.Contains(t, out, "×")
	assert.Contains(t, out, "2/3")

	// Box: border + padding + 40 inner columns
	assert.Equal(t, 44, layout.Box.Width)
	assert.Equal(t, 18, layout.Box.X)
	// header + 2 rows + footer + 2 border lines
	assert.Equal(t, 6, layout.Box.Height)
	assert.Equal(t, 9, layout.Box.Y)
}

func TestOverlayLayoutHitTesting(t *testing.T) {
	r := NewRenderer(NewStyles())
	_, layout := r.Render(overlayState())

	// First row sits below the header inside the border and padding
	idx, ok := layout.RowAt(layout.Box.X+2, layout.Box.Y+2)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = layout.RowAt(layout.Box.X+2, layout.Box.Y+3)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	// Footer is not a row
	_, ok = layout.RowAt(layout.Box.X+2, layout.Box.Y+4)
	assert.False(t, ok)

	// Close control is on the header line at the right edge of the content
	assert.True(t, layout.Close.Contains(layout.Box.X+2+39, layout.Box.Y+1))
	assert.False(t, layout.Box.Contains(0, 0))
}

func TestRowAtHonoursScrollOffset(t *testing.T) {
	l := OverlayLayout{Rows: Rect{X: 5, Y: 3, Width: 10, Height: 4}, FirstIndex: 20}

	idx, ok := l.RowAt(5, 5)
	require.True(t, ok)
	assert.Equal(t, 22, idx)

	_, ok = l.RowAt(15, 5)
	assert.False(t, ok)
}

func TestRowAtFollowsRowHeights(t *testing.T) {
	l := OverlayLayout{Rows: Rect{X: 0, Y: 10, Width: 20, Height: 6}, FirstIndex: 4, RowHeights: []int{3, 1, 2}}

	for y, want := range map[int]int{10: 4, 12: 4, 13: 5, 14: 6, 15: 6} {
		idx, ok := l.RowAt(1, y)
		require.True(t, ok, "y=%d", y)
		assert.Equal(t, want, idx, "y=%d", y)
	}
	_, ok := l.RowAt(1, 16)
	assert.False(t, ok)
}

func TestRenderOverlayPaddedRows(t *testing.T) {
	padded := lipgloss.NewStyle().Padding(1, 0)
	r := NewRenderer(NewStyles().Apply(StyleOverrides{Item: &padded, SelectedItem: &padded}))

	_, layout := r.Render(overlayState())
	assert.Equal(t, []int{3, 3}, layout.RowHeights)
	assert.Equal(t, 6, layout.Rows.Height)

	idx, ok := layout.RowAt(layout.Rows.X, layout.Rows.Y+4)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRenderOverlayEmptyState(t *testing.T) {
	r := NewRenderer(NewStyles())
	vs := overlayState()
	vs.Query = "zzz"
	vs.Rows = nil
	vs.Matches = 0

	out, layout := r.Render(vs)
	assert.Contains(t, out, "No matches")
	assert.Equal(t, 0, layout.Rows.Height)
	_, ok := layout.RowAt(layout.Rows.X, layout.Rows.Y)
	assert.False(t, ok)
}

func TestRenderRowTruncatesLongLabels(t *testing.T) {
	r := NewRenderer(NewStyles())
	vs := overlayState()
	vs.Rows = []RowView{{Label: strings.Repeat("x", 200), Selected: true}}

	_, layout := r.Render(vs)
	assert.Equal(t, 44, layout.Box.Width, "long labels do not widen the box")
}

func TestPopupWithoutWindowSize(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	out, rect := pr.RenderPopupOverlay("box", 0, 0)
	assert.Equal(t, "box", out)
	assert.Equal(t, Rect{Width: 3, Height: 1}, rect)
}

func TestStylesApply(t *testing.T) {
	base := NewStyles()
	button := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	got := base.Apply(StyleOverrides{Button: &button})
	assert.Equal(t, lipgloss.Color("9"), got.Button.GetForeground())
	assert.NotEqual(t, lipgloss.Color("9"), base.Button.GetForeground(), "base styles are not modified")
	assert.Equal(t, base.Item.GetForeground(), got.Item.GetForeground())
}
