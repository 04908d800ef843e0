package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gridgazer/internal/config"
	"gridgazer/internal/discovery"
	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
	"gridgazer/internal/logging"
	"gridgazer/internal/prefetch"
	"gridgazer/internal/session"
	"gridgazer/internal/ui"
)

// forwardedEvents are the bus events the TUI reacts to
var forwardedEvents = []domain.EventType{ //nolint:gochecknoglobals // fixed list
	domain.EventScanStarted,
	domain.EventEntryDiscovered,
	domain.EventScanCompleted,
	domain.EventError,
	domain.EventPageChanged,
	domain.EventMetadataLoaded,
	domain.EventSessionSaved,
}

// App is everything a run needs once flags and config are resolved
type App struct {
	Config    *config.Config
	Roots     []string
	NoSession bool
}

// runner starts the viewer for a resolved App
type runner func(cmd *cobra.Command, app App) error

// NewRootCmd creates the gridgazer command.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, runTUI)
}

func newRootCmd(version string, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gridgazer [paths...]",
		Short:   "Page through images in a terminal grid",
		Long:    "gridgazer: browse images, zip/cbz members and PDF pages a page of cells at a time",
		Version: version,
		Example: rootCmdExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := resolveApp(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd, app)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Int("rows", 0, "grid rows (0 = use config)")
	cmd.Flags().Int("cols", 0, "grid columns (0 = use config)")
	cmd.Flags().Bool("wrap", false, "wrap around at the first and last page")
	cmd.Flags().String("config", "", "config file (default is the user config dir)")
	cmd.Flags().String("log-level", "", "log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-file", "", "log file (overrides config)")
	cmd.Flags().Bool("no-session", false, "neither restore nor save the last position")

	return cmd
}

const rootCmdExample = `  # Browse the current directory
  gridgazer

  # Browse two folders in a 2x5 grid
  gridgazer ~/Pictures ~/Downloads --rows 2 --cols 5

  # Wrap around at the ends and log debug output
  gridgazer comics/ --wrap --log-level debug --log-file /tmp/gridgazer.log`

// resolveApp loads the config file and applies flags on top of it
func resolveApp(cmd *cobra.Command, args []string) (App, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.NewConfigService(path).Load()
	if err != nil {
		return App{}, err
	}

	if flags.Changed("rows") {
		cfg.Sight.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("cols") {
		cfg.Sight.Cols, _ = flags.GetInt("cols")
	}
	if flags.Changed("wrap") {
		cfg.Navigation.Wrap, _ = flags.GetBool("wrap")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Logging.File, _ = flags.GetString("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return App{}, err
	}

	roots, err := resolveRoots(args)
	if err != nil {
		return App{}, err
	}

	noSession, _ := flags.GetBool("no-session")
	return App{Config: cfg, Roots: roots, NoSession: noSession}, nil
}

// resolveRoots makes every path absolute, defaulting to the working directory
func resolveRoots(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	roots := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		roots = append(roots, abs)
	}
	return roots, nil
}

func runTUI(cmd *cobra.Command, app App) error {
	cfg := app.Config

	logger, closer, err := logging.Setup(logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	log := logging.Component(logger, "cli")
	log.Info().Strs("roots", app.Roots).Int("rows", cfg.Sight.Rows).Int("cols", cfg.Sight.Cols).Msg("starting")

	bus := eventbus.New(logger)
	discoverySvc := discovery.NewDiscoveryService(bus, cfg.Scan, logger)

	var prefetcher *prefetch.Prefetcher
	if cfg.Prefetch.Enabled {
		if prefetcher, err = prefetch.New(cfg.Prefetch, bus, logger); err != nil {
			return err
		}
	}

	var sessions *session.Store
	if cfg.Session.Enabled && !app.NoSession {
		sessions = session.NewStore(cfg.Session.File)
	}

	model := ui.NewModel(ui.Options{
		Bus:        bus,
		Config:     cfg,
		Roots:      app.Roots,
		Prefetcher: prefetcher,
		Sessions:   sessions,
		Logger:     logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Send blocks until the program reads the message, which keeps the
	// bus order; once Run returns Send is a no-op.
	for _, eventType := range forwardedEvents {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(sigChan)
		close(done)
	}()
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-done:
		}
	}()

	_, runErr := p.Run()

	discoverySvc.StopScan()
	bus.Close()

	if runErr != nil {
		log.Error().Err(runErr).Msg("program exited with error")
		return fmt.Errorf("error running program: %w", runErr)
	}
	log.Info().Msg("exiting")
	return nil
}
