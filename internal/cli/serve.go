package cli

import (
	"github.com/spf13/cobra"

	"github.com/tarefasapp/tarefas/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: withLogger(func(cmd *cobra.Command, args []string) error {
		cfg := app.MustReadEnv()
		app.MustInitApplicationLogger(cfg.Env)

		pool := app.MustConnectPostgres(cfg.Postgres)
		defer app.DisconnectPostgres(pool)

		app.MustListenAndServeHTTP(cfg, pool)
		return nil
	}),
}
