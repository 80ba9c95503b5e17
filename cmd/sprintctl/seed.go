package main

import (
	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixture.yaml>",
	Short: "Load people, holidays, sprints and option lists from a YAML fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return seedRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedRun(path string) error {
	f, err := seed.LoadFile(path)
	if err != nil {
		return err
	}

	r, err := getRepository()
	if err != nil {
		return err
	}

	res, err := seed.Apply(r, f, ui.DryRun)
	if err != nil {
		return err
	}

	if ui.DryRun {
		ui.DryRunMsg("would write %d people, %d holidays, %d sprints", res.People, res.Holidays, res.Sprints)
		return nil
	}
	ui.Success("Seeded %d people, %d holidays, %d sprints", res.People, res.Holidays, res.Sprints)
	return nil
}
