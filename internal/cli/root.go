package cli

import (
	"github.com/spf13/cobra"

	"github.com/tarefasapp/tarefas/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "tarefas",
	Short: "TarefasApp task tracking backend",
	Long: `tarefas serves the TarefasApp HTTP API and sends the daily
email digest of open tasks.`,
	SilenceUsage: true,
}

// withLogger initializes the default logger, tagged with the command name,
// before a command runs.
func withLogger(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app.InitDefaultLogger(cmd.Name())
		return fn(cmd, args)
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
