package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"pagegrip/internal/eventbus"
)

// LocalFileName is the per-directory config file, preferred over the user config
const LocalFileName = ".pagegrip.toml"

// Limits and defaults
const (
	DefaultPageSize  = 10
	MinPageSize      = 1
	MaxPageSize      = 1000
	DefaultDemoItems = 50
	DefaultSort      = "none"
	DefaultLogLevel  = "info"
	DefaultLogFile   = "pagegrip.log"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// SortFields lists the sort fields accepted in sort expressions
var SortFields = []string{"none", "name", "natural", "length"}

// Validation errors
var (
	ErrInvalidPageSize   = fmt.Errorf("page_size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidDemoItems  = errors.New("demo_items cannot be negative")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version"`
	Source     string             `toml:"source"`     // items file; empty means demo data
	DemoItems  int                `toml:"demo_items"` // size of the demo collection
	Pagination PaginationSettings `toml:"pagination"`
	UISettings UISettings         `toml:"ui"`
	Logging    LoggingSettings    `toml:"logging"`
}

// PaginationSettings holds the initial paginator inputs
type PaginationSettings struct {
	PageSize      int    `toml:"page_size"`
	ClampOnShrink bool   `toml:"clamp_on_shrink"`
	Sort          string `toml:"sort"`
	Filter        string `toml:"filter"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpHint bool `toml:"show_help_hint"`
}

// LoggingSettings controls the log destination and verbosity
type LoggingSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
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

// NewConfigService creates a config service bound to path.
// An empty path resolves to DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the local config file if one exists in the working
// directory, otherwise the file under the user config directory
func DefaultPath() string {
	if _, err := os.Stat(LocalFileName); err == nil {
		return LocalFileName
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pagegrip", "config.toml")
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file.
// A missing file yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			PageSize: cfg.Pagination.PageSize,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		DemoItems: DefaultDemoItems,
		Pagination: PaginationSettings{
			PageSize:      DefaultPageSize,
			ClampOnShrink: true,
			Sort:          DefaultSort,
		},
		UISettings: UISettings{
			ShowHelpHint: true,
		},
		Logging: LoggingSettings{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}

// Validate checks the configuration for out-of-range values
func (c *Config) Validate() error {
	if c.Pagination.PageSize < MinPageSize || c.Pagination.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Pagination.PageSize)
	}
	if c.DemoItems < 0 {
		return ErrInvalidDemoItems
	}
	if _, _, err := ParseSort(c.Pagination.Sort); err != nil {
		return err
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort expression in the format "field" or "field:order".
// An empty expression means no sorting.
//
// Examples: "name", "natural:desc", "length:asc"
//
//nolint:nonamedreturns // field and order read better named
func ParseSort(expr string) (field, order string, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return DefaultSort, SortOrderAsc, nil
	}

	parts := strings.Split(expr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = SortOrderAsc
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.ToLower(field)
	valid := false
	for _, f := range SortFields {
		if f == field {
			valid = true
			break
		}
	}
	if !valid {
		return "", "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(SortFields, ", "))
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
