package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/usecase"
	"github.com/spf13/cobra"
)

type filterOptions struct {
	search     string
	genres     []string
	playing    bool
	bookmarked bool
	now        string
	session    string
	expression bool
}

func filterCmd(a *app) *cobra.Command {
	opts := &filterOptions{}
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show points visible for the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, a, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.search, "query", "q", "", "Case-insensitive substring of the artist name")
	cmd.Flags().StringSliceVar(&opts.genres, "genre", nil, "Genre to include (repeatable, any of them matches)")
	cmd.Flags().BoolVar(&opts.playing, "playing", false, "Only points playing at --now")
	cmd.Flags().BoolVar(&opts.bookmarked, "bookmarked", false, "Only points bookmarked in --session")
	cmd.Flags().StringVar(&opts.now, "now", "", "Evaluation time, RFC3339 (defaults to current time)")
	cmd.Flags().StringVar(&opts.session, "session", "", "Session id whose bookmarks are used")
	cmd.Flags().BoolVar(&opts.expression, "expr", false, "Print the renderer filter expression instead of points")
	return cmd
}

func runFilter(cmd *cobra.Command, a *app, opts *filterOptions) error {
	ctx := cmd.Context()

	now := time.Now()
	if opts.now != "" {
		parsed, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		now = parsed
	}

	if opts.bookmarked && opts.session == "" {
		return fmt.Errorf("--bookmarked requires --session")
	}

	ds, err := a.dataset(ctx)
	if err != nil {
		return err
	}

	bookmarked := domain.NewIDSet()
	if opts.session != "" {
		store, backend, err := a.interactionStore(opts.session)
		if err != nil {
			return err
		}
		defer backend.Close()
		bookmarked = store.Load(ctx).Bookmarked
	}

	sel := domain.FilterSelection{
		SearchText:           opts.search,
		Genres:               opts.genres,
		OnlyCurrentlyPlaying: opts.playing,
		OnlyBookmarked:       opts.bookmarked,
	}.Normalized()

	out := cmd.OutOrStdout()

	if opts.expression {
		data, err := json.Marshal(usecase.BuildExpression(sel, bookmarked, now))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	points := usecase.FilterPoints(ds, usecase.BuildPredicate(sel, bookmarked, now))
	for _, p := range points {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s - %s\n",
			p.ID,
			p.DisplayName,
			strings.Join(p.Genres, ","),
			time.UnixMilli(p.TimeWindow.Start).UTC().Format(time.RFC3339),
			time.UnixMilli(p.TimeWindow.End).UTC().Format(time.RFC3339),
		)
	}
	fmt.Fprintf(out, "%d of %d points visible\n", len(points), ds.Len())
	return nil
}
