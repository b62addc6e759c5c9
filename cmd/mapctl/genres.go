package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func genresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List all genres present in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, g := range ds.AllGenres() {
				fmt.Fprintln(out, g)
			}
			return nil
		},
	}
}
