package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"lookup/internal/domain"
	"lookup/internal/eventbus"
	"lookup/internal/ui/logic"
	"lookup/internal/ui/state"
)

// HiddenMsg reports that the close transition of a session finished
type HiddenMsg struct {
	Session uint64
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State       *state.Widget
	Data        *[]domain.Item
	Strategy    logic.FilterStrategy
	Bus         eventbus.EventBus
	Log         logr.Logger
	OnSelect    func(domain.Item)
	OnCancel    func()
	HideDelay   time.Duration
	VisibleRows func() int
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// finish dispatches the outcome of a closing transition and schedules the
// end of the close transition
func (c *CommandContext) finish(out logic.Outcome) tea.Cmd {
	switch out.Kind {
	case logic.OutcomeSelect:
		c.Log.V(1).Info("item selected", "synthetic", out.Synthetic)
		c.publish(eventbus.ItemSelectedEvent{Item: out.Item, Synthetic: out.Synthetic})
		if c.OnSelect != nil {
			c.OnSelect(out.Item)
		}
	case logic.OutcomeCancel:
		c.Log.V(1).Info("selection cancelled", "reason", out.Reason)
		c.publish(eventbus.SelectionCancelledEvent{Reason: out.Reason})
		if c.OnCancel != nil {
			c.OnCancel()
		}
	default:
		return nil
	}

	session := c.State.Session
	if c.HideDelay <= 0 {
		return func() tea.Msg { return HiddenMsg{Session: session} }
	}
	return tea.Tick(c.HideDelay, func(time.Time) tea.Msg {
		return HiddenMsg{Session: session}
	})
}

// OpenCommand shows the overlay
type OpenCommand struct {
	ctx *CommandContext
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext) *OpenCommand {
	return &OpenCommand{ctx: ctx}
}

// Execute opens the overlay with the full data set
func (c *OpenCommand) Execute() tea.Cmd {
	if c.ctx.State.Visible {
		return nil
	}
	*c.ctx.State = logic.Open(*c.ctx.State, *c.ctx.Data)
	c.ctx.Log.V(1).Info("overlay opened", "candidates", len(*c.ctx.Data), "session", c.ctx.State.Session)
	c.ctx.publish(eventbus.OverlayOpenedEvent{Candidates: len(*c.ctx.Data)})
	return nil
}

// QueryCommand records new query text
type QueryCommand struct {
	ctx   *CommandContext
	query string
}

// NewQueryCommand creates a new query command
func NewQueryCommand(ctx *CommandContext, query string) *QueryCommand {
	return &QueryCommand{ctx: ctx, query: query}
}

// Execute recomputes the results for the query
func (c *QueryCommand) Execute() tea.Cmd {
	if !c.ctx.State.Visible {
		return nil
	}
	*c.ctx.State = logic.ChangeQuery(*c.ctx.State, c.query, *c.ctx.Data, c.ctx.Strategy)
	c.ctx.publish(eventbus.QueryChangedEvent{Query: c.query, Results: len(c.ctx.State.Results)})
	return nil
}

// SelectCommand picks the result at an index
type SelectCommand struct {
	ctx   *CommandContext
	index int
}

// NewSelectCommand creates a new select command
func NewSelectCommand(ctx *CommandContext, index int) *SelectCommand {
	return &SelectCommand{ctx: ctx, index: index}
}

// Execute closes the overlay with the chosen item
func (c *SelectCommand) Execute() tea.Cmd {
	next, out := logic.Select(*c.ctx.State, c.index)
	*c.ctx.State = next
	return c.ctx.finish(out)
}

// SubmitCommand commits the typed text when nothing matches
type SubmitCommand struct {
	ctx *CommandContext
}

// NewSubmitCommand creates a new submit command
func NewSubmitCommand(ctx *CommandContext) *SubmitCommand {
	return &SubmitCommand{ctx: ctx}
}

// Execute dispatches the typed text as a synthetic item
func (c *SubmitCommand) Execute() tea.Cmd {
	next, out := logic.Submit(*c.ctx.State)
	*c.ctx.State = next
	return c.ctx.finish(out)
}

// ConfirmCommand is the Enter key inside the overlay
type ConfirmCommand struct {
	ctx *CommandContext
}

// NewConfirmCommand creates a new confirm command
func NewConfirmCommand(ctx *CommandContext) *ConfirmCommand {
	return &ConfirmCommand{ctx: ctx}
}

// Execute selects the highlighted row or submits the typed text
func (c *ConfirmCommand) Execute() tea.Cmd {
	next, out := logic.Confirm(*c.ctx.State)
	*c.ctx.State = next
	return c.ctx.finish(out)
}

// CancelCommand closes the overlay without a selection
type CancelCommand struct {
	ctx    *CommandContext
	reason domain.CancelReason
}

// NewCancelCommand creates a new cancel command
func NewCancelCommand(ctx *CommandContext, reason domain.CancelReason) *CancelCommand {
	return &CancelCommand{ctx: ctx, reason: reason}
}

// Execute closes the overlay
func (c *CancelCommand) Execute() tea.Cmd {
	next, out := logic.Cancel(*c.ctx.State, c.reason)
	*c.ctx.State = next
	return c.ctx.finish(out)
}

// NavigateCommand moves the highlighted row
type NavigateCommand struct {
	ctx       *CommandContext
	direction logic.Direction
}

// NewNavigateCommand creates a new navigate command
func NewNavigateCommand(ctx *CommandContext, direction logic.Direction) *NavigateCommand {
	return &NavigateCommand{ctx: ctx, direction: direction}
}

// Execute moves the cursor
func (c *NavigateCommand) Execute() tea.Cmd {
	rows := 1
	if c.ctx.VisibleRows != nil {
		rows = c.ctx.VisibleRows()
	}
	*c.ctx.State = logic.Move(*c.ctx.State, c.direction, rows)
	return nil
}

// HiddenCommand finishes a close transition
type HiddenCommand struct {
	ctx     *CommandContext
	session uint64
}

// NewHiddenCommand creates a new hidden command
func NewHiddenCommand(ctx *CommandContext, session uint64) *HiddenCommand {
	return &HiddenCommand{ctx: ctx, session: session}
}

// Execute clears the query unless the overlay was reopened meanwhile
func (c *HiddenCommand) Execute() tea.Cmd {
	next, ok := logic.Hidden(*c.ctx.State, c.session, *c.ctx.Data)
	if !ok {
		c.ctx.Log.V(1).Info("ignoring stale hide", "session", c.session, "current", c.ctx.State.Session)
		return nil
	}
	*c.ctx.State = next
	c.ctx.publish(eventbus.OverlayHiddenEvent{})
	return nil
}

// ReplaceDataCommand swaps the candidate list
type ReplaceDataCommand struct {
	ctx  *CommandContext
	data []domain.Item
}

// NewReplaceDataCommand creates a new replace data command
func NewReplaceDataCommand(ctx *CommandContext, data []domain.Item) *ReplaceDataCommand {
	return &ReplaceDataCommand{ctx: ctx, data: data}
}

// Execute stores the data and refreshes the visible results
func (c *ReplaceDataCommand) Execute() tea.Cmd {
	*c.ctx.Data = c.data
	*c.ctx.State = logic.Refresh(*c.ctx.State, c.data, c.ctx.Strategy)
	c.ctx.Log.V(1).Info("data replaced", "count", len(c.data))
	c.ctx.publish(eventbus.DataReplacedEvent{Count: len(c.data)})
	return nil
}
