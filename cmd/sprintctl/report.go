package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <sprint-id>",
	Short: "Render the planning report of a sprint as PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportRun(args[0])
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output file (default sprint-<id>.pdf)")
	rootCmd.AddCommand(reportCmd)
}

func reportRun(sprintID string) error {
	r, err := getRepository()
	if err != nil {
		return err
	}

	data, err := report.Collect(r, sprintID, includeHolidays)
	if err != nil {
		return err
	}

	out := reportOut
	if out == "" {
		out = fmt.Sprintf("sprint-%s.pdf", sprintID)
	}
	if ui.DryRun {
		ui.DryRunMsg("would write %s", out)
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := report.WritePDF(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	ui.Success("Wrote %s", out)
	return nil
}
