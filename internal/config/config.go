package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
)

// Validation errors
var (
	ErrInvalidSight     = errors.New("sight must be at least 1x1")
	ErrInvalidWorkers   = errors.New("prefetch workers must be at least 1")
	ErrInvalidCacheSize = errors.New("prefetch cache size must be at least 1")
	ErrInvalidAhead     = errors.New("prefetch ahead must not be negative")
	ErrInvalidMaxDepth  = errors.New("scan max depth must be at least 1")
	ErrInvalidLogLevel  = errors.New("unknown log level")
)

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	Sight      SightConfig      `toml:"sight"`
	Navigation NavigationConfig `toml:"navigation"`
	Scan       ScanConfig       `toml:"scan"`
	Prefetch   PrefetchConfig   `toml:"prefetch"`
	Session    SessionConfig    `toml:"session"`
	Logging    LoggingConfig    `toml:"logging"`
}

// SightConfig is the grid geometry
type SightConfig struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// NavigationConfig holds paging defaults
type NavigationConfig struct {
	Wrap bool `toml:"wrap"`
}

// ScanConfig controls what discovery collects
type ScanConfig struct {
	Extensions    []string `toml:"extensions"`
	Archives      bool     `toml:"archives"`
	PDFs          bool     `toml:"pdfs"`
	MaxDepth      int      `toml:"max_depth"`
	IncludeHidden bool     `toml:"include_hidden"`
}

// PrefetchConfig controls metadata read-ahead
type PrefetchConfig struct {
	Enabled   bool `toml:"enabled"`
	Ahead     int  `toml:"ahead"`
	Workers   int  `toml:"workers"`
	CacheSize int  `toml:"cache_size"`
}

// SessionConfig controls where the last position is kept
type SessionConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// SightSize returns rows * cols
func (c *Config) SightSize() int {
	return c.Sight.Rows * c.Sight.Cols
}

// Validate checks the values a running viewer depends on
func (c *Config) Validate() error {
	if c.Sight.Rows < 1 || c.Sight.Cols < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSight, c.Sight.Rows, c.Sight.Cols)
	}
	if c.Prefetch.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.Prefetch.CacheSize < 1 {
		return ErrInvalidCacheSize
	}
	if c.Prefetch.Ahead < 0 {
		return ErrInvalidAhead
	}
	if c.Scan.MaxDepth < 1 {
		return ErrInvalidMaxDepth
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
		}
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(domain.ConfigLoadedEvent{Path: cs.filePath})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	cs.publish(domain.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(event domain.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Sight:   SightConfig{Rows: 3, Cols: 4},
		Scan: ScanConfig{
			Extensions: []string{".png", ".jpg", ".jpeg", ".gif"},
			Archives:   true,
			PDFs:       true,
			MaxDepth:   5,
		},
		Prefetch: PrefetchConfig{
			Enabled:   true,
			Ahead:     12,
			Workers:   4,
			CacheSize: 512,
		},
		Session: SessionConfig{
			Enabled: true,
			File:    filepath.Join(stateDir(), "session.yaml"),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(stateDir(), "gridgazer.log"),
		},
	}
}

// DefaultPath is the config file used when none is given
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gridgazer", "config.toml")
}

func stateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "gridgazer")
}
