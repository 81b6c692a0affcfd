package ui

import (
	"lookup/internal/domain"
)

// OpenMsg opens the overlay, the same as calling Model.Open
type OpenMsg struct{}

// DataMsg replaces the candidate list. Hosts loading data in the
// background send it through tea.Program.Send.
type DataMsg struct {
	Items []domain.Item
}
