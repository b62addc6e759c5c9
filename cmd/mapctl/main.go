package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "mapctl",
		Short:        "Offline tools for the porchfest map dataset and interaction records",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.envPath, "env", ".env", "Path to the .env config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "error", "Log level (debug, info, warn, error)")

	root.AddCommand(genresCmd(a))
	root.AddCommand(filterCmd(a))
	root.AddCommand(validateCmd(a))
	root.AddCommand(stateCmd(a))
	return root
}
