package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/deadelineurz/rustupolis-downloads/internal/server"
)

// serveCmd returns the serve command.
func serveCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the download page API",
		Long: `Run an HTTP server for the website's download page.

Endpoints:
  GET /api/download?platform=<navigator.platform>
      Newest release links plus the recommended download for the visitor.
      The user agent is read from the User-Agent header.
  GET /api/os?platform=<navigator.platform>
      Detected operating system only.
  GET /healthz

The release is fetched from GitHub on every request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(addr)
			if err != nil {
				return err
			}

			logger := root.logger(cmd.ErrOrStderr(), hclog.Info)
			resolver, err := newResolver(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(resolver, cfg, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default 127.0.0.1:8080)")

	return cmd
}
