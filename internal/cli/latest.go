package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/deadelineurz/rustupolis-downloads/internal/release"
)

// latestCmd returns the latest command.
func latestCmd(root *rootOptions) *cobra.Command {
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show download links of the newest release",
		Long: `List the repository's releases, take the newest one and map its assets
onto the linux, mac and win slots by file name.

An asset goes to the first slot whose marker its name contains, checked in
the order "linux", "macos", "windows". Matching is case-sensitive and a later
asset replaces an earlier one for the same slot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig("")
			if err != nil {
				return err
			}

			logger := root.logger(cmd.ErrOrStderr(), hclog.Off)
			resolver, err := newResolver(cfg, logger)
			if err != nil {
				return err
			}

			assets, err := resolver.FetchLatestReleaseAssets(cmd.Context(), cfg.Org, cfg.Repo)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.json {
				return writeJSON(w, assets)
			}
			if assets == nil {
				fmt.Fprintf(w, "no releases published for %s/%s\n", cfg.Org, cfg.Repo)
				return nil
			}
			printAssets(w, assets, isTerminal(w))
			return nil
		},
	}

	out.register(cmd.Flags())

	return cmd
}

// printAssets prints one line per slot, as a table on terminals and
// tab-separated otherwise.
func printAssets(w io.Writer, assets *release.PlatformAssets, tty bool) {
	rows := [][]string{
		{"linux", assets.Linux},
		{"mac", assets.Mac},
		{"win", assets.Win},
	}

	if !tty {
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
		}
		return
	}

	table := NewTable([]string{"PLATFORM", "URL"})
	for _, row := range rows {
		if row[1] == "" {
			row[1] = "(none)"
		}
		table.AddRow(row)
	}
	fmt.Fprint(w, table.Render())
}
