package goaleasy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			report := store.RunDoctor(s.Snapshot())
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate goal ids: %d\n", report.DuplicateGoalIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate task/milestone ids: %d\n", report.DuplicateChildIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Milestone count drift: %d\n", report.MilestoneCountDrift)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid statuses: %d\n", report.InvalidStatuses)
			if !report.Clean() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
