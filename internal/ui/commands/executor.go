package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"gridgazer/internal/eventbus"
	"gridgazer/internal/session"
	"gridgazer/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteScan creates and executes a scan command
func (e *Executor) ExecuteScan(roots []string) tea.Cmd {
	cmd := NewScanCommand(e.ctx, roots)
	return cmd.Execute()
}

// ExecuteSaveSession creates and executes a save session command
func (e *Executor) ExecuteSaveSession(store *session.Store, saved session.State) tea.Cmd {
	cmd := NewSaveSessionCommand(e.ctx, store, saved)
	return cmd.Execute()
}
