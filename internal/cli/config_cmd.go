package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"pagegrip/internal/config"
	"pagegrip/internal/eventbus"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(opts), newConfigShowCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var (
		force bool
		local bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Example: `  # Create the user configuration
  pagegrip config init

  # Create ./` + config.LocalFileName + `, overwriting an existing one
  pagegrip config init --local --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if local {
				path = config.LocalFileName
			}
			return initConfig(cmd, opts.debug, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&local, "local", false, "write ./"+config.LocalFileName+" instead of the user configuration")

	return cmd
}

// initConfig writes the defaults to path. An empty path means the default location.
// The existing file may be invalid, so logging uses the defaults instead of it.
func initConfig(cmd *cobra.Command, debug bool, path string, force bool) error {
	logger, closer, err := config.NewLogger(config.LoggingSettings{Level: config.DefaultLogLevel}, cmd.ErrOrStderr(), debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	bus := eventbus.New(logger)
	watchEvents(bus, logger)
	svc := config.NewConfigServiceWithBus(path, bus)

	if !force {
		_, statErr := os.Stat(svc.Path())
		if statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", svc.Path(), statErr)
		}
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", svc.Path())
	return nil
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(nil, false)
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := toml.Marshal(s.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			source := s.svc.Path()
			if _, statErr := os.Stat(source); statErr != nil {
				source += " (not found, defaults)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", source, data)
			return nil
		},
	}
}
