package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authform/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:          "authform",
		Short:        "Login and signup backend-for-frontend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "load variables from these .env files")

	root.AddCommand(newServeCmd(), newValidateCmd())
	return root
}
