package main

import (
	"fmt"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/repository/statestore"
	"github.com/porchfest-map/internal/usecase"
	"github.com/spf13/cobra"
)

func stateCmd(a *app) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset a stored interaction record",
	}
	cmd.PersistentFlags().StringVar(&session, "session", "", "Session id of the record")
	_ = cmd.MarkPersistentFlagRequired("session")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print visited and bookmarked points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, backend, err := openSessionStore(a, session)
			if err != nil {
				return err
			}
			defer backend.Close()

			state := store.Load(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key: %s\n", store.Key())
			fmt.Fprintf(out, "visited: %v\n", state.Visited.Sorted())
			fmt.Fprintf(out, "bookmarked: %v\n", state.Bookmarked.Sorted())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear-visited",
		Short: "Forget visited points, keep bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, backend, err := openSessionStore(a, session)
			if err != nil {
				return err
			}
			defer backend.Close()

			cleared := store.Load(cmd.Context()).Visited.Len()
			if err := store.SaveVisited(cmd.Context(), domain.NewIDSet()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %d visited points\n", cleared)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete the record, forgetting visits and bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, backend, err := openSessionStore(a, session)
			if err != nil {
				return err
			}
			defer backend.Close()

			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", store.Key())
			return nil
		},
	})

	return cmd
}

func openSessionStore(a *app, session string) (*usecase.InteractionStore, *statestore.Backend, error) {
	if session == "" {
		return nil, nil, fmt.Errorf("--session is required")
	}
	return a.interactionStore(session)
}
