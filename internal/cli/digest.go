package cli

import (
	"github.com/spf13/cobra"

	"github.com/tarefasapp/tarefas/internal/app"
)

var (
	digestOnce        bool
	digestSkipInitial bool
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Send the daily digest of open tasks",
	Long: `digest sends the email summary of open tasks once at startup and then
every day on DIGEST_SCHEDULE (08:30 local time by default).

With --once it sends a single digest and exits, failing if delivery fails.`,
	Args: cobra.NoArgs,
	RunE: withLogger(func(cmd *cobra.Command, args []string) error {
		cfg := app.MustReadDigestEnv()
		app.MustInitApplicationLogger(cfg.Env)

		pool := app.MustConnectPostgres(cfg.Postgres)
		defer app.DisconnectPostgres(pool)

		job := app.MustNewDigestJob(cfg, pool)
		if digestOnce {
			return app.RunDigestOnce(cfg, job)
		}

		app.MustRunDigestScheduler(cfg, job, !digestSkipInitial)
		return nil
	}),
}

func init() {
	digestCmd.Flags().BoolVar(&digestOnce, "once", false, "send one digest and exit")
	digestCmd.Flags().BoolVar(&digestSkipInitial, "skip-initial", false, "do not send a digest at startup")
	digestCmd.MarkFlagsMutuallyExclusive("once", "skip-initial")
}
