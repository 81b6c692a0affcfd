package types

import (
	"lookup/internal/domain"
	"lookup/internal/ui/logic"
)

// Visibility actions
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

type CancelAction struct {
	Reason domain.CancelReason
}

func (a CancelAction) Type() string { return "cancel" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction commits the typed text as the selection
type SubmitTextAction struct{}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Selection actions
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

type SelectAction struct {
	Index int // index into the current results
}

func (a SelectAction) Type() string { return "select" }

// Navigation actions
type NavigateAction struct {
	Direction logic.Direction
}

func (a NavigateAction) Type() string { return "navigate" }
