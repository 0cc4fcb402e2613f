package cli

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitsvg/pkg/observability"
	"github.com/matzehuels/circuitsvg/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		shutdown time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendering HTTP API",
		Long: `Serve exposes the renderer over HTTP:

  POST /v1/render/{view}   render the element JSON body (pcb, schematic, nets)
  POST /v1/bounds          bounds and viewport report as JSON
  GET  /healthz            liveness probe

Rendered artifacts are cached in the file cache, or in Redis when the config
file sets cache.redis_addr or cache.redis_url.`,
		Example: `  circuitsvg serve --addr :8080
  curl --data-binary @board.json 'localhost:8080/v1/render/pcb?width=1200' > board.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a := c.cfg().Server.Addr; a != "" && !cmd.Flags().Changed("addr") {
				addr = a
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetServerHooks(hooks)
			defer observability.Reset()

			l, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}

			srv := server.New(runner, c.Logger)
			hs := server.NewHTTPServer(srv.Handler(), c.Logger)

			printSuccess("Listening on http://%s", l.Addr())
			printNextStep("Try", fmt.Sprintf("curl --data-binary @board.json http://%s/v1/render/pcb", l.Addr()))

			if err := server.Serve(cmd.Context(), shutdown, hs, l); err != nil {
				return err
			}
			printInfo("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().DurationVar(&shutdown, "shutdown-timeout", server.DefaultShutdownTimeout, "grace period for in-flight requests")

	return cmd
}
