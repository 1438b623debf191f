package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Plan a scenario and report only its schedule conflicts",
	RunE:  runConflicts,
}

func init() {
	conflictsCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (yaml)")
	_ = conflictsCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, args []string) error {
	planner, in, err := setupPlanner()
	if err != nil {
		return err
	}
	defer planner.Close()

	out := planner.Plan(in)
	printConflicts(out.Report.Conflicts)

	fmt.Println("\nchannel occupancy (pairs per slot):")
	fmt.Println("slot\tdeep\tfeeder")
	for slot, row := range out.Report.Occupancy {
		if row[0] == 0 && row[1] == 0 {
			continue
		}
		fmt.Printf("%d\t%d\t%d\n", slot, row[0], row[1])
	}
	return nil
}
