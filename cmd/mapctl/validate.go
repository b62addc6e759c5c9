package main

import (
	"fmt"
	"io"

	"github.com/porchfest-map/internal/repository/geojson"
	"github.com/porchfest-map/internal/usecase"
	"github.com/porchfest-map/internal/usecase/dto"
	"github.com/spf13/cobra"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run consistency checks against the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(cmd.Context())
			if err != nil {
				return err
			}

			report := usecase.NewMapUseCase(ds, a.cfg.Map, geojson.Encode, a.log).ValidateDataset()
			out := cmd.OutOrStdout()

			if len(report.Issues) == 0 {
				fmt.Fprintf(out, "%d points, no issues found.\n", report.Points)
				return nil
			}

			printIssues(out, "Errors", dto.SeverityError, report)
			printIssues(out, "Warnings", dto.SeverityWarning, report)

			if report.Errors > 0 {
				return fmt.Errorf("validation found %d errors", report.Errors)
			}
			return nil
		},
	}
}

func printIssues(out io.Writer, title, severity string, report dto.ValidationReport) {
	count := report.Warnings
	if severity == dto.SeverityError {
		count = report.Errors
	}
	if count == 0 {
		return
	}

	fmt.Fprintf(out, "%s (%d):\n", title, count)
	for _, issue := range report.Issues {
		if issue.Severity != severity {
			continue
		}
		fmt.Fprintf(out, "  - point %d: %s (%s)\n", issue.PointID, issue.Message, issue.Code)
	}
}
