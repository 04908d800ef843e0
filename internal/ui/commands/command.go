package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
	"gridgazer/internal/session"
	"gridgazer/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

func (c *CommandContext) publish(event domain.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// ScanCommand asks discovery to walk the roots again
type ScanCommand struct {
	ctx   *CommandContext
	roots []string
}

// NewScanCommand creates a new scan command
func NewScanCommand(ctx *CommandContext, roots []string) *ScanCommand {
	return &ScanCommand{
		ctx:   ctx,
		roots: roots,
	}
}

// Execute publishes the scan request
func (c *ScanCommand) Execute() tea.Cmd {
	c.ctx.State.StatusMessage = "Scanning..."
	c.ctx.publish(domain.ScanRequestedEvent{Paths: c.roots})
	return nil
}

// SaveSessionCommand writes the current position to the session file
type SaveSessionCommand struct {
	ctx   *CommandContext
	store *session.Store
	saved session.State
}

// NewSaveSessionCommand creates a new save session command
func NewSaveSessionCommand(ctx *CommandContext, store *session.Store, saved session.State) *SaveSessionCommand {
	return &SaveSessionCommand{
		ctx:   ctx,
		store: store,
		saved: saved,
	}
}

// Execute saves synchronously so it can run right before quitting
func (c *SaveSessionCommand) Execute() tea.Cmd {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(c.saved); err != nil {
		c.ctx.State.StatusMessage = fmt.Sprintf("Failed to save session: %v", err)
		c.ctx.publish(domain.ErrorEvent{Message: "Failed to save session", Err: err})
		return nil
	}
	c.ctx.publish(domain.SessionSavedEvent{Path: c.store.Path()})
	return nil
}
