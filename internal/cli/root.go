// Package cli provides the command-line interface for rustupolis-dl.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/deadelineurz/rustupolis-downloads/internal/config"
	"github.com/deadelineurz/rustupolis-downloads/internal/release"
	"github.com/deadelineurz/rustupolis-downloads/internal/version"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	verbose bool
	github  string
	apiURL  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   version.Name,
		Short: "Resolve Rustupolis downloads for the website",
		Long: `rustupolis-dl resolves the newest GitHub release of a repository into
per-platform download links and guesses a visitor's operating system from
browser navigator values.

Configuration is read from RUSTUPOLIS_ORG, RUSTUPOLIS_REPO, RUSTUPOLIS_API_URL
and RUSTUPOLIS_LISTEN_ADDR. Flags take precedence over the environment.

Examples:
  # Show download links for the newest release
  rustupolis-dl latest

  # Same for another repository, as JSON
  rustupolis-dl latest --github owner/repo --json

  # Classify a browser
  rustupolis-dl detect --platform MacIntel

  # Serve the download page API
  rustupolis-dl serve --addr :8080`,
		Version:      version.Version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&opts.github, "github", "", "repository in owner/repo form (default deadelineurz/rustupolis)")
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (default "+config.DefaultAPIURL+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		latestCmd(opts),
		detectCmd(),
		serveCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig resolves configuration from the environment and persistent flags.
func (o *rootOptions) loadConfig(listenAddr string) (*config.Config, error) {
	cfg, err := config.NewBuilder().
		WithEnvConfig().
		WithRepository(o.github).
		WithAPIURL(o.apiURL).
		WithListenAddr(listenAddr).
		Build()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// logger returns a logger writing to w. Verbose mode logs at debug level;
// otherwise quiet commands log nothing and others log at the given level.
func (o *rootOptions) logger(w io.Writer, quietLevel hclog.Level) hclog.Logger {
	if o.verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   version.Name,
			Output: w,
			Level:  hclog.Debug,
		})
	}
	if quietLevel == hclog.Off {
		return hclog.New(&hclog.LoggerOptions{
			Name:   version.Name,
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   version.Name,
		Output: w,
		Level:  quietLevel,
	})
}

// newResolver builds a release resolver for cfg.
func newResolver(cfg *config.Config, logger hclog.Logger) (*release.Resolver, error) {
	resolver, err := release.NewResolver(
		release.WithBaseURL(cfg.APIURL),
		release.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create release resolver: %w", err)
	}
	return resolver, nil
}

// versionCmd prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
