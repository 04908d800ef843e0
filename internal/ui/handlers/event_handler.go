package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
	"gridgazer/internal/paginator"
	"gridgazer/internal/session"
	"gridgazer/internal/store"
	"gridgazer/internal/ui/services/navigation"
	"gridgazer/internal/ui/state"
)

// statusTimeout is how long an error stays in the status bar
const statusTimeout = 5 * time.Second

// TickMsg is a tick message for animations
type TickMsg time.Time

// ClearStatusMsg clears a transient status message
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	store    store.EntryStore
	nav      *navigation.Service
	prefetch func() tea.Cmd
	logger   zerolog.Logger
}

// NewEventHandler creates a new event handler. prefetch schedules metadata
// reads for the cells around the cursor and may return nil.
func NewEventHandler(appState *state.AppState, entries store.EntryStore, nav *navigation.Service, prefetch func() tea.Cmd, logger zerolog.Logger) *EventHandler {
	if prefetch == nil {
		prefetch = func() tea.Cmd { return nil }
	}
	return &EventHandler{
		state:    appState,
		store:    entries,
		nav:      nav,
		prefetch: prefetch,
		logger:   logger.With().Str("component", "ui-events").Logger(),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.ScanStartedEvent:
		h.store.Clear()
		h.nav.Reset()
		h.nav.SetLength(0)
		h.state.StartScan()
		h.state.StatusMessage = "Scanning..."
		// Return a tick command to start the spinner animation
		return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case domain.EntryDiscoveredEvent:
		return h.addEntry(e.Entry)

	case domain.ScanCompletedEvent:
		h.state.FinishScan(e.Found)
		h.state.StatusMessage = fmt.Sprintf("Scan complete. Found %d entries.", e.Found)

	case domain.ErrorEvent:
		h.logger.Warn().Err(e.Err).Msg(e.Message)
		if e.Err != nil {
			h.state.StatusMessage = fmt.Sprintf("Error: %s: %v", e.Message, e.Err)
		} else {
			h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		}
		return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })

	case domain.PageChangedEvent:
		h.logger.Debug().
			Int("level", e.Level).
			Int("levels", e.Levels).
			Int("index", e.Index).
			Int("fly_leaves", e.FlyLeaves).
			Msg("page changed")
		return h.prefetch()

	case domain.MetadataLoadedEvent:
		// Nothing to store; the next render reads the cache

	case domain.SessionSavedEvent:
		h.logger.Debug().Str("path", e.Path).Msg("session saved")
	}

	return nil
}

// addEntry appends a discovered entry. The first entry positions the
// cursor; the entry a saved session was left on restores that position.
func (h *EventHandler) addEntry(entry domain.Entry) tea.Cmd {
	if !h.store.Add(entry) {
		return nil
	}
	length := h.store.Len()
	h.nav.SetLength(length)
	h.state.Found = length

	if saved, ok := h.state.TakeRestore(entry.Key); ok {
		saved.Index = length - 1
		session.Restore(h.nav.Paginator(), saved, length)
		h.logger.Info().Str("entry", entry.Key).Int("index", saved.Index).Msg("session restored")
		return h.prefetch()
	}

	if !h.nav.Positioned() {
		if _, err := h.nav.Apply(navigation.Command{
			Op:     navigation.OpFirst,
			Paging: paginator.Paging{Count: 1},
		}); err != nil {
			h.logger.Error().Err(err).Msg("failed to position cursor")
		}
		return nil // PageChanged schedules the prefetch
	}

	// Entries landing on screen need their metadata too
	if length-1 <= h.nav.Status().LastIndex {
		return h.prefetch()
	}
	return nil
}
