package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lookup/internal/domain"
	"lookup/internal/ui/input/types"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// Context returns the shared command context
func (e *Executor) Context() *CommandContext {
	return e.ctx
}

// Execute runs the command for an input action
func (e *Executor) Execute(action types.Action) tea.Cmd {
	cmd, err := e.commandFor(action)
	if err != nil {
		e.ctx.Log.Error(err, "dropping action")
		return nil
	}
	return cmd.Execute()
}

// ExecuteAll runs actions in order and batches their commands
func (e *Executor) ExecuteAll(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range actions {
		if cmd := e.Execute(a); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// ExecuteHidden finishes the close transition of a session
func (e *Executor) ExecuteHidden(session uint64) tea.Cmd {
	return NewHiddenCommand(e.ctx, session).Execute()
}

// ExecuteReplaceData swaps the candidate list
func (e *Executor) ExecuteReplaceData(data []domain.Item) tea.Cmd {
	return NewReplaceDataCommand(e.ctx, data).Execute()
}

func (e *Executor) commandFor(action types.Action) (Command, error) {
	switch a := action.(type) {
	case types.OpenAction:
		return NewOpenCommand(e.ctx), nil
	case types.UpdateTextAction:
		return NewQueryCommand(e.ctx, a.Text), nil
	case types.SelectAction:
		return NewSelectCommand(e.ctx, a.Index), nil
	case types.SubmitTextAction:
		return NewSubmitCommand(e.ctx), nil
	case types.ConfirmAction:
		return NewConfirmCommand(e.ctx), nil
	case types.CancelAction:
		return NewCancelCommand(e.ctx, a.Reason), nil
	case types.NavigateAction:
		return NewNavigateCommand(e.ctx, a.Direction), nil
	default:
		return nil, fmt.Errorf("unknown action %T", action)
	}
}
