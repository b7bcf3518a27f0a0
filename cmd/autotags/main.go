package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/autotags/internal/cmd"
	"github.com/gravitrone/autotags/internal/logger"
	"github.com/gravitrone/autotags/internal/tags"
	"github.com/gravitrone/autotags/internal/ui"
)

type rootOptions struct {
	overrides cmd.Overrides
	preset    []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	root := &cobra.Command{
		Use:   "autotags",
		Short: "autotags - interactive tag picker",
		Long:  "autotags: pick tags from suggestions or create your own, then print the selection one per line.",
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(opts, c.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.Flags()
	flags.BoolVar(&opts.overrides.Space, "space", false, "create a tag when a space is typed")
	flags.BoolVar(&opts.overrides.Below, "below", false, "show selected tags below the input")
	flags.BoolVar(&opts.overrides.Prefix, "prefix", false, "match suggestions by prefix instead of substring")
	flags.StringVarP(&opts.overrides.SuggestionsFile, "suggestions", "s", "", "suggestion file (yaml, json or toml)")
	flags.StringVar(&opts.overrides.Placeholder, "placeholder", "", "input placeholder text")
	flags.StringArrayVarP(&opts.preset, "tag", "t", nil, "preselected tag (repeatable)")

	root.AddCommand(cmd.InitCmd())
	root.AddCommand(cmd.SuggestCmd())
	return root
}

// prepare builds the picker model. The returned func closes the log file.
func prepare(opts rootOptions) (ui.App, func() error, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return ui.App{}, nil, err
	}
	opts.overrides.Apply(cfg)

	lg, closeLog, err := logger.Open(cfg.LogFile, "autotags", cfg.LogLevel)
	if err != nil {
		return ui.App{}, nil, err
	}

	pool, err := cmd.LoadPool(cfg)
	if err != nil {
		_ = closeLog()
		return ui.App{}, nil, err
	}

	preset := make([]tags.Item, 0, len(opts.preset))
	for _, name := range opts.preset {
		preset = append(preset, tags.Item{Name: name})
	}

	client := cmd.ClientFor(cfg)
	server := "none"
	if client != nil {
		server = client.BaseURL()
	}
	host := ui.NewHost(preset, client, lg)
	lg.Info("picker starting", "pool", len(pool), "server", server, "preset", len(preset))
	return ui.NewApp(cfg, host, pool, client, lg), closeLog, nil
}

func runTUI(opts rootOptions, out io.Writer) error {
	app, closeLog, err := prepare(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if !isInteractiveTerminal(os.Stdin) {
		return fmt.Errorf("autotags needs an interactive terminal; use 'autotags suggest' in scripts")
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	if picked, ok := final.(ui.App); ok {
		printTags(out, picked.Tags())
	}
	return nil
}

func printTags(out io.Writer, selected []tags.Item) {
	for _, name := range tags.Names(selected) {
		fmt.Fprintln(out, name)
	}
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
