package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefasapp/tarefas/internal/auth"
)

var hashAlgorithm string

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a password hash for provisioning a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0], auth.Algorithm(hashAlgorithm))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
		return err
	},
}

func init() {
	hashPasswordCmd.Flags().StringVar(&hashAlgorithm, "algorithm", string(auth.AlgorithmBcrypt), "hash algorithm: bcrypt or argon2id")
}
