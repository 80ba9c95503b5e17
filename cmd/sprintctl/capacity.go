package main

import (
	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/output"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/report"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity <sprint-id>",
	Short: "Show a sprint's capacity and everyone's remaining effort",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return capacityRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}

func capacityRun(sprintID string) error {
	r, err := getRepository()
	if err != nil {
		return err
	}

	data, err := report.Collect(r, sprintID, includeHolidays)
	if err != nil {
		return err
	}

	ui.Info("%s (%s .. %s) %s", output.Cyan(data.Sprint.Name), data.Sprint.StartDate, data.Sprint.EndDate,
		output.SprintStatusColor(data.Sprint.EffectiveStatus()))
	ui.Info("%d business days, %s h per person", data.Capacity.BusinessDays, output.Hours(data.Capacity.PlannedHours))

	if err := ui.EffortTable(data.Summary); err != nil {
		return err
	}

	for _, d := range data.Summary.DanglingReferences {
		ui.Warning("%s %s refers to unknown person %s", d.Kind, d.SourceID, d.PersonID)
	}
	return nil
}
