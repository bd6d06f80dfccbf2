package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barrierkit/internal/config"
	"github.com/matzehuels/barrierkit/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve layouts over HTTP. Routes:

  GET  /healthz
  GET  /v1/kinds
  GET  /v1/layouts/{kind}?width=&height=&seed=&format=
  POST /v1/layouts

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.cfg.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			backend := c.cfg.Cache.Backend
			if noCache {
				backend = config.CacheNone
			}
			printKeyValue("Address", cfg.Addr)
			printKeyValue("Cache", backend)
			printKeyValue("Max size", strconv.Itoa(cfg.MaxDimension))

			return server.New(runner, cfg, c.Logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
