package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/autotags/internal/api"
	"github.com/gravitrone/autotags/internal/catalog"
	"github.com/gravitrone/autotags/internal/config"
)

// RunInteractiveInit prompts for the suggestion sources and picker behavior,
// checks them, and persists the config.
func RunInteractiveInit(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	cfg := config.Default()

	cfg.SuggestionsFile = ask("suggestions file (blank for none): ")
	if cfg.SuggestionsFile != "" {
		pool, err := catalog.Load(expandHome(cfg.SuggestionsFile))
		if err != nil {
			return fmt.Errorf("check suggestions: %w", err)
		}
		fmt.Fprintf(out, "found %d suggestions\n", len(pool))
	}

	cfg.ServerURL = ask(fmt.Sprintf("tag server url (blank for none, %q for %s): ", "default", api.DefaultBaseURL))
	if cfg.ServerURL != "" {
		cfg.APIKey = ask("api key (blank for none): ")
		client := api.NewClient(cfg.ServerURL, cfg.APIKey)
		if cfg.ServerURL == "default" {
			client = api.NewDefaultClient(cfg.APIKey)
			cfg.ServerURL = client.BaseURL()
		}
		status, err := client.Health()
		if err != nil {
			return fmt.Errorf("check server: %w", err)
		}
		fmt.Fprintf(out, "server status: %s\n", status)
	}

	cfg.CreateTagOnSpace = yes(ask("create tags on space? [y/N]: "))
	cfg.TagsOrientedBelow = yes(ask("show tags below the input? [y/N]: "))
	if yes(ask("match suggestions by prefix? [y/N]: ")) {
		cfg.Match = config.MatchPrefix
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

func yes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// InitCmd returns the `autotags init` command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the picker config interactively",
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveInit(os.Stdin, c.OutOrStdout())
		},
	}
}
