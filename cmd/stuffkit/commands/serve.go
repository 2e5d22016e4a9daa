package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stuffkit/pkg/api"
	"github.com/dmitrymomot/stuffkit/pkg/config"
	"github.com/dmitrymomot/stuffkit/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP playground",
		Long: `Serve POST /chunk, POST /validate, POST /validate/form, GET /color and
GET /health until interrupted. Listener settings come from HTTP_ADDR,
HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
HTTP_SHUTDOWN_TIMEOUT and HTTP_MAX_BODY_BYTES.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg httpserver.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			opts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}

			router := api.Router(a.log, api.WithEncoding(a.cfg.Encoding))
			return httpserver.NewFromConfig(cfg, router, opts...).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")

	return cmd
}
