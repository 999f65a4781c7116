package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pagegrip/internal/config"
	"pagegrip/internal/eventbus"
)

// errNotTerminal is returned when the TUI is started without a terminal
var errNotTerminal = errors.New("pagegrip needs a terminal; use 'pagegrip page' for plain output")

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	debug      bool
}

// session bundles what a command needs once the config is loaded
type session struct {
	cfg    *config.Config
	svc    config.ConfigService
	bus    eventbus.EventBus
	base   zerolog.Logger // untagged; constructors add their own component
	logger zerolog.Logger
	closer io.Closer
}

// Close releases the log file
func (s *session) Close() error {
	return s.closer.Close()
}

// open loads the configuration and builds the logger and event bus from it.
// console receives log output when non-nil; logToFile additionally appends to
// the configured log file.
func (o *options) open(console io.Writer, logToFile bool) (*session, error) {
	// The bus logs through a logger built from the config, so load it first
	// and announce the load once the bus exists
	cfg, err := config.NewConfigService(o.configPath).Load()
	if err != nil {
		return nil, err
	}

	settings := cfg.Logging
	if !logToFile {
		settings.File = ""
	}
	logger, closer, err := config.NewLogger(settings, console, o.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	bus := eventbus.New(logger)
	watchEvents(bus, logger)

	svc := config.NewConfigServiceWithBus(o.configPath, bus)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path(), PageSize: cfg.Pagination.PageSize})

	return &session{
		cfg:    cfg,
		svc:    svc,
		bus:    bus,
		base:   logger,
		logger: config.ComponentLogger(logger, "cli"),
		closer: closer,
	}, nil
}

// NewRootCmd creates the root command. Without a subcommand it runs browse.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}
	browse := newBrowseCmd(opts)

	cmd := &cobra.Command{
		Use:   "pagegrip [file]",
		Short: "Page through a list of items",
		Long: `pagegrip shows a list one page at a time, with live filtering and sorting.

Items are read one per line from file, or from standard input when file is "-".
Without a file a demo list is generated.`,
		Version:      version,
		Example:      rootCmdExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         browse.RunE,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default ./"+config.LocalFileName+" or the user config directory)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(browse, newPageCmd(opts), newConfigCmd(opts))

	return cmd
}

const rootCmdExample = `  # Browse 50 demo items
  pagegrip

  # Browse the lines of a file
  pagegrip browse todo.txt

  # Print page 3 of a filtered, sorted list as JSON
  ls | pagegrip page - --filter go --sort natural --page 3 -o json

  # Write a default config file to the working directory
  pagegrip config init --local`
