package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/koala/internal/buildcache"
)

func newCacheCmd(a *app) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or purge the artifact cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openCache()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, TitleStyle.Render("Artifact cache"))
			fmt.Fprintf(out, "  Path:     %s\n", store.Path())
			fmt.Fprintf(out, "  Entries:  %d\n", stats.Entries)
			fmt.Fprintf(out, "  IR bytes: %d\n", stats.IRBytes)
			if stats.Entries > 0 {
				fmt.Fprintf(out, "  Oldest:   %s\n", stats.Oldest.Format(time.RFC3339))
				fmt.Fprintf(out, "  Newest:   %s\n", stats.Newest.Format(time.RFC3339))
			}
			return nil
		},
	}

	var olderThan time.Duration
	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete cached artifacts",
		Long: `Deletes cached artifacts older than --older-than, or all of them.

Examples:
  koala cache purge
  koala cache purge --older-than 168h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openCache()
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Purge(cmd.Context(), olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Purged"), plural(int(n), "artifact"))
			return nil
		},
	}
	purgeCmd.Flags().DurationVar(&olderThan, "older-than", 0, "only delete entries older than this")

	cacheCmd.AddCommand(statsCmd, purgeCmd)
	return cacheCmd
}

func (a *app) openCache() (*buildcache.Store, error) {
	return buildcache.Open(buildcache.Config{Path: a.cfg.Build.CachePath, Logger: a.logger})
}
