package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/autotags/internal/catalog"
	"github.com/gravitrone/autotags/internal/config"
	"github.com/gravitrone/autotags/internal/tags"
)

// RunSuggest prints the suggestions matching query, one per line, using the
// same filtering as the picker. limit <= 0 prints every match.
func RunSuggest(out io.Writer, cfg *config.Config, query string, limit int) error {
	pool, err := LoadPool(cfg)
	if err != nil {
		return err
	}
	if client := ClientFor(cfg); client != nil {
		rows, err := client.ListTags(query, limit)
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		remote := make([]tags.Item, 0, len(rows))
		for _, r := range rows {
			remote = append(remote, r.Item())
		}
		pool = catalog.Merge(pool, remote)
	}
	if pool == nil {
		return fmt.Errorf("no suggestions configured: set suggestions_file or server_url")
	}

	filter := func(q string) ([]tags.Item, bool) { return tags.Filter(q, pool) }
	if cfg.PrefixMatch() {
		filter = catalog.NewPrefixIndex(pool).Filter
	}

	results, ok := filter(query)
	if !ok {
		return fmt.Errorf("query is required")
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "no matches")
		return nil
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	for _, r := range results {
		fmt.Fprintln(out, r.Name)
	}
	return nil
}

// SuggestCmd returns the `autotags suggest` command.
func SuggestCmd() *cobra.Command {
	var (
		overrides Overrides
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Print suggestions matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			overrides.Apply(cfg)
			return RunSuggest(c.OutOrStdout(), cfg, args[0], limit)
		},
	}
	cmd.Flags().StringVarP(&overrides.SuggestionsFile, "suggestions", "s", "", "suggestion file (yaml, json or toml)")
	cmd.Flags().BoolVar(&overrides.Prefix, "prefix", false, "match names by prefix instead of substring")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of matches to print")
	return cmd
}
