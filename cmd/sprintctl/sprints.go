package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/output"
)

var includeHolidays bool

var sprintsCmd = &cobra.Command{
	Use:   "sprints",
	Short: "List sprints with their capacity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sprintsRun()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&includeHolidays, "include-holidays", true, "Count holidays as working days")
	rootCmd.AddCommand(sprintsCmd)
}

func sprintsRun() error {
	r, err := getRepository()
	if err != nil {
		return err
	}

	appCfg, err := r.GetConfig()
	if err != nil {
		return err
	}
	dailyHours, err := capacity.DailyHoursFromString(appCfg.DailyPlanningHour)
	if err != nil {
		return err
	}

	sprints, err := r.GetAllSprints()
	if err != nil {
		return err
	}
	if len(sprints) == 0 {
		ui.Info("No sprints yet. Use 'sprintctl seed --file <fixture>' to load some.")
		return nil
	}

	holidays, err := r.GetAllHolidays()
	if err != nil {
		return err
	}

	table := ui.Table([]string{"ID", "Name", "Start", "End", "Status", "Days", "Hours"})
	for _, s := range sprints {
		c := capacity.ForSprint(s, dailyHours, holidays, includeHolidays)
		if err := table.Append([]string{
			output.Cyan(s.ID),
			s.Name,
			s.StartDate.String(),
			s.EndDate.String(),
			output.SprintStatusColor(s.EffectiveStatus()),
			strconv.Itoa(c.BusinessDays),
			output.Hours(c.PlannedHours),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
