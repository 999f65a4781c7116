package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pagegrip/internal/source"
	"pagegrip/internal/ui"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse items page by page in the terminal UI",
		Long: `Opens the interactive pager. Press ? inside for the key bindings.

Logs go to the file named in the [logging] section of the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts, args)
		},
	}
}

func runBrowse(cmd *cobra.Command, opts *options, args []string) error {
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	// The terminal belongs to Bubble Tea, so logs only go to the file
	s, err := opts.open(nil, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		s.cfg.Source = args[0]
	}

	loader := source.NewLoader(s.bus, s.base, s.cfg.Source, s.cfg.DemoItems)
	model := ui.NewModel(s.bus, s.cfg, loader, s.base)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if s.cfg.Source == source.StdinPath {
		// Items arrive on stdin, so keys have to come from the terminal device
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	s.logger.Info().Str("source", s.cfg.Source).Msg("starting UI")
	if _, err := p.Run(); err != nil {
		s.logger.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	s.logger.Info().Msg("UI exited normally")

	return nil
}
