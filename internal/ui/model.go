package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"gridgazer/internal/config"
	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
	"gridgazer/internal/paginator"
	"gridgazer/internal/prefetch"
	"gridgazer/internal/session"
	"gridgazer/internal/store"
	"gridgazer/internal/ui/commands"
	"gridgazer/internal/ui/handlers"
	"gridgazer/internal/ui/input"
	inputtypes "gridgazer/internal/ui/input/types"
	"gridgazer/internal/ui/services/navigation"
	"gridgazer/internal/ui/state"
	"gridgazer/internal/ui/viewmodels"
	"gridgazer/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Options carries what the model needs from the outside
type Options struct {
	Bus        eventbus.EventBus
	Config     *config.Config
	Roots      []string
	Prefetcher *prefetch.Prefetcher // nil disables read-ahead
	Sessions   *session.Store       // nil disables the saved position
	Logger     zerolog.Logger
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	roots  []string
	state  *state.AppState // centralized state
	keys   inputtypes.KeyMap

	// UI-specific state not in AppState
	width  int
	height int

	// Collection and cursor
	store          store.EntryStore
	nav            *navigation.Service
	prefetcher     *prefetch.Prefetcher
	prefetchCancel context.CancelFunc
	sessions       *session.Store

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *Pager
	logger       zerolog.Logger

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	keys := inputtypes.DefaultKeyMap()

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		roots:        opts.Roots,
		state:        appState,
		keys:         keys,
		store:        store.NewMemoryEntryStore(),
		nav:          navigation.NewService(opts.Bus, cfg.Sight.Rows, cfg.Sight.Cols, cfg.Navigation.Wrap),
		prefetcher:   opts.Prefetcher,
		sessions:     opts.Sessions,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		pager:        NewPager(),
		logger:       opts.Logger.With().Str("component", "ui").Logger(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.store, m.nav, m.prefetchCmd, opts.Logger)
	m.viewModel = viewmodels.NewViewModel(appState, m.nav, m.store, m.lookup(), keys)
	m.cmdExecutor = commands.NewExecutor(appState, opts.Bus)

	m.loadSession()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the first scan
func (m *Model) Init() tea.Cmd {
	return m.cmdExecutor.ExecuteScan(m.roots)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.state.InPager {
			return m, nil
		}

		ctx := &input.ModelContext{Entries: m.store}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncInput()

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.state.InPager {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if _, ok := action.(inputtypes.PendingCountAction); !ok {
		m.state.PendingCount = 0
	}

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.navigate(navigation.Command{
			Op: a.Op,
			Paging: paginator.Paging{
				Count:       a.Count,
				Wrap:        m.nav.Wrap(),
				IgnoreSight: a.IgnoreSight,
			},
		})

	case inputtypes.SetFlyLeavesAction:
		return m.navigate(navigation.Command{Op: navigation.OpSetFlyLeaves, N: a.N})

	case inputtypes.ToggleWrapAction:
		if m.nav.ToggleWrap() {
			return m.setStatus("Wrap on")
		}
		return m.setStatus("Wrap off")

	case inputtypes.ResizeAction:
		m.nav.Resize(m.nav.Rows()+a.Rows, m.nav.Cols()+a.Cols)

	case inputtypes.PendingCountAction:
		m.state.PendingCount = a.Count

	case inputtypes.StatusAction:
		return m.setStatus(a.Message)

	case inputtypes.RescanAction:
		return m.cmdExecutor.ExecuteScan(m.roots)

	case inputtypes.OpenListAction:
		return m.openPager("entry list", views.ListingContent(m.store.All(), m.nav.Status(), m.lookup()))

	case inputtypes.ToggleHelpAction:
		return m.openPager("help", views.HelpContent(m.keys))

	case inputtypes.QuitAction:
		return m.quit()

	case inputtypes.ChangeModeAction, inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The input line is rebuilt from the handler after every key
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.TickMsg:
		// Keep the spinner going while scanning, but not behind the pager
		if m.state.InPager || !m.state.Scanning {
			return m, nil
		}
		return m, tick()

	case handlers.ClearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("pager", msg.title).Msg("pager failed")
			return m, m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.title, msg.err))
		}
		return m, nil

	case prefetchDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Warn().Err(msg.err).Msg("prefetch failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil

	default:
		// Cursor blinks and the like belong to the text input
		cmd := m.inputHandler.Update(msg)
		m.syncInput()
		return m, cmd
	}
}

func (m *Model) navigate(cmd navigation.Command) tea.Cmd {
	m.state.UserMoved = true
	if _, err := m.nav.Apply(cmd); err != nil {
		m.logger.Error().Err(err).Msg("navigation failed")
		return m.setStatus(fmt.Sprintf("Error: %v", err))
	}
	return nil
}

// prefetchCmd reads metadata for the page and the cells after it,
// cancelling the previous read-ahead
func (m *Model) prefetchCmd() tea.Cmd {
	if m.prefetcher == nil || !m.nav.Positioned() {
		return nil
	}

	indexes := prefetch.Upcoming(m.nav.Paginator(), m.nav.SightSize(), m.config.Prefetch.Ahead)
	entries := make([]domain.Entry, 0, len(indexes))
	for _, index := range indexes {
		if entry, ok := m.store.At(index); ok {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	if m.prefetchCancel != nil {
		m.prefetchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.prefetchCancel = cancel

	p := m.prefetcher
	return func() tea.Msg {
		return prefetchDoneMsg{err: p.Prefetch(ctx, entries)}
	}
}

// openPager returns a command that shows content in ov, pausing rendering
func (m *Model) openPager(title, content string) tea.Cmd {
	program := m.program
	pager := m.pager
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
			defer program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{title: title, err: pager.Show(title, content)}
	}
}

func (m *Model) quit() tea.Cmd {
	m.saveSession()
	if m.prefetchCancel != nil {
		m.prefetchCancel()
	}
	return tea.Quit
}

func (m *Model) loadSession() {
	if m.sessions == nil {
		return
	}
	saved, err := m.sessions.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			m.logger.Warn().Err(err).Msg("ignoring unreadable session")
		}
		return
	}
	if !slices.Equal(saved.Roots, m.roots) {
		return
	}
	m.state.PendingRestore = &saved
}

// saveSession records the entry on the first real cell of the page
func (m *Model) saveSession() {
	if m.sessions == nil || !m.nav.Positioned() {
		return
	}
	p := m.nav.Paginator()
	entry, ok := m.store.At(session.ShownIndex(p))
	if !ok {
		return
	}

	saved := session.Capture(p, entry.Key)
	saved.Roots = m.roots
	m.cmdExecutor.ExecuteSaveSession(m.sessions, saved)
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return handlers.ClearStatusMsg{} })
}

func (m *Model) syncInput() {
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInput(m.inputHandler.Prompt(), ti.View())
		return
	}
	m.viewModel.SetInput("", "")
}

func (m *Model) lookup() viewmodels.MetadataLookup {
	if m.prefetcher == nil {
		return nil
	}
	return m.prefetcher.Lookup
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return handlers.TickMsg(t)
	})
}
