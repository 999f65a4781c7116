package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pagegrip/internal/config"
	"pagegrip/internal/domain"
	"pagegrip/internal/eventbus"
	"pagegrip/internal/paginator"
	"pagegrip/internal/source"
	"pagegrip/internal/ui/logic"
	"pagegrip/internal/ui/views"
)

// Output formats for the page command
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var errInvalidOutput = errors.New("invalid output format")

// pageFlags holds the page command flags
type pageFlags struct {
	page     int
	pageSize int
	filter   string
	sort     string
	output   string
}

// pageReport is the machine-readable result of the page command
type pageReport struct {
	Source     string         `json:"source"     yaml:"source"`
	Filter     string         `json:"filter"     yaml:"filter"`
	Sort       string         `json:"sort"       yaml:"sort"`
	Pagination paginator.Meta `json:"pagination" yaml:"pagination"`
	Items      []reportItem   `json:"items"      yaml:"items"`
}

type reportItem struct {
	Position int    `json:"position" yaml:"position"`
	Label    string `json:"label"    yaml:"label"`
}

func newPageCmd(opts *options) *cobra.Command {
	var flags pageFlags

	cmd := &cobra.Command{
		Use:   "page [file]",
		Short: "Print one page of items",
		Long: `Prints a single page without starting the terminal UI.

Flags override the [pagination] section of the config. A --page outside the
available pages is ignored with a warning and page 1 is printed.`,
		Example: `  # Second page of the demo items
  pagegrip page --page 2

  # Natural order, 20 per page, as YAML
  pagegrip page names.txt --sort natural --page-size 20 -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, opts, flags, args)
		},
	}

	cmd.Flags().IntVarP(&flags.page, "page", "p", 1, "page to print (1-based)")
	cmd.Flags().IntVarP(&flags.pageSize, "page-size", "n", 0, "items per page (default from config)")
	cmd.Flags().StringVarP(&flags.filter, "filter", "f", "", "filter query, e.g. 'item 1', 'prefix:a', 'pos:even'")
	cmd.Flags().StringVarP(&flags.sort, "sort", "s", "",
		"sort as field[:asc|desc], field one of "+strings.Join(config.SortFields, ", "))
	cmd.Flags().StringVarP(&flags.output, "output", "o", OutputTable, "output format: table, json or yaml")

	return cmd
}

func runPage(cmd *cobra.Command, opts *options, flags pageFlags, args []string) error {
	format, err := parseOutputFormat(flags.output)
	if err != nil {
		return err
	}

	s, err := opts.open(cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.cfg
	if len(args) == 1 {
		cfg.Source = args[0]
	}
	if cmd.Flags().Changed("page-size") {
		cfg.Pagination.PageSize = flags.pageSize
	}
	if cmd.Flags().Changed("filter") {
		cfg.Pagination.Filter = flags.filter
	}
	if cmd.Flags().Changed("sort") {
		cfg.Pagination.Sort = flags.sort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	mode, err := logic.ParseSortMode(cfg.Pagination.Sort)
	if err != nil {
		return fmt.Errorf("invalid --sort: %w", err)
	}

	items, err := source.NewLoader(s.bus, s.base, cfg.Source, cfg.DemoItems).Load(cmd.Context())
	if err != nil {
		return err
	}

	var window []domain.Item
	pages := paginator.New(paginator.WithObserver(func(change paginator.PageChange[domain.Item]) {
		window = change.Items
	}))
	pages.SetInputs(items, cfg.Pagination.PageSize, logic.ParseFilter(cfg.Pagination.Filter), logic.Comparator(mode))

	if flags.page != pages.CurrentPage() && !pages.GoToPage(flags.page) {
		s.bus.Publish(eventbus.NavigationRejectedEvent{Requested: flags.page, TotalPages: pages.TotalPages()})
		s.logger.Warn().
			Int("requested", flags.page).
			Int("total_pages", pages.TotalPages()).
			Msgf("page out of range, showing page %d", pages.CurrentPage())
	}

	report := pageReport{
		Source:     sourceLabel(cfg.Source),
		Filter:     cfg.Pagination.Filter,
		Sort:       mode.String(),
		Pagination: pages.Meta(),
		Items: lo.Map(window, func(item domain.Item, _ int) reportItem {
			return reportItem{Position: item.Position, Label: item.Label}
		}),
	}

	return writeReport(cmd.OutOrStdout(), format, report)
}

func parseOutputFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: table, json, yaml)", errInvalidOutput, s)
	}
}

func sourceLabel(path string) string {
	switch path {
	case "":
		return source.DemoSource
	case source.StdinPath:
		return "stdin"
	default:
		return path
	}
}

func writeReport(w io.Writer, format string, report pageReport) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()

	default:
		return renderTable(w, report)
	}
}

// renderTable prints the page as a two-column table followed by the status line
func renderTable(w io.Writer, report pageReport) error {
	meta := report.Pagination
	status := views.StatusLine(meta.CurrentPage, meta.TotalPages, meta.PageSize, meta.TotalItems)

	if len(report.Items) == 0 {
		_, err := fmt.Fprintf(w, "No items\n%s\n", status)
		return err
	}

	rows := lo.Map(report.Items, func(item reportItem, _ int) []string {
		return []string{strconv.Itoa(item.Position), item.Label}
	})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ITEM").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), status)
	return err
}
