package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/api"
	"github.com/rshade/partyplanner/internal/metrics"
	"github.com/rshade/partyplanner/internal/server"
)

// NewServeCmd creates the serve command, which hosts the live party page.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the party page over HTTP",
		Long: `Loads the party list and serves the page. Following a party link
fetches its details and re-renders the page. /healthz reports liveness and
/metrics exposes Prometheus metrics. Stops gracefully on SIGINT or SIGTERM.`,
		Example: `  partyplanner serve
  partyplanner serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromCommand(cmd)
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m := metrics.New()
			a := newApp(cfg, api.WithObserver(m))
			srv := server.New(a,
				server.WithAddr(cfg.Server.Addr),
				server.WithMetrics(m),
				server.WithLogger(baseLogger),
			)
			cmd.PrintErrf("Serving on %s\n", cfg.Server.Addr)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
