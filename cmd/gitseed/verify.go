package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkarren/gitseed/internal/constants"
	"github.com/mkarren/gitseed/internal/history"
)

// newVerifyCmd reads a seeded repository back and reports what its history
// looks like. Out-of-order pairs are expected after seeding: commits append
// to HEAD in generation order while their dates are drawn at random.
func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report the commit count, date span and date ordering of a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath, err := cmd.Flags().GetString("repo")
			if err != nil {
				return err
			}
			if repoPath == "" {
				repoPath = "."
			}

			report, err := history.Inspect(repoPath)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().String("repo", "", "repository to inspect (default: current directory)")

	return cmd
}

// printReport renders a Report as aligned key/value lines
func printReport(w io.Writer, report history.Report) {
	_, _ = fmt.Fprintf(w, "Commits:            %d\n", report.CommitCount)
	_, _ = fmt.Fprintf(w, "Earliest date:      %s\n", report.EarliestAuthorDate.Format(constants.DateFormat))
	_, _ = fmt.Fprintf(w, "Latest date:        %s\n", report.LatestAuthorDate.Format(constants.DateFormat))
	_, _ = fmt.Fprintf(w, "Out-of-order pairs: %d\n", report.OutOfOrderPairs)
}
