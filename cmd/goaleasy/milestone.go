package goaleasy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/i18n"
	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/store"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage a goal's milestone plan",
}

var milestoneListCmd = &cobra.Command{
	Use:   "list <goal-id>",
	Short: "Show a goal's milestones as kanban columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			state := s.Snapshot()
			goal := findGoalByPrefix(state.Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}

			for _, status := range []model.MilestoneStatus{model.StatusTodo, model.StatusDoing, model.StatusDone} {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", i18n.StatusLabel(state.Language, status))
				for _, ms := range goal.Milestones {
					if ms.Status == status {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  (%s)\n", shortID(ms.ID), ms.Title, ms.Date)
					}
				}
			}
			return nil
		})
	},
}

var milestoneStatus string

var milestoneMoveCmd = &cobra.Command{
	Use:   "move <goal-id> <milestone-id>",
	Short: "Move a milestone to another status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := model.ParseMilestoneStatus(milestoneStatus)
		if err != nil {
			return err
		}
		return withStore(func(cfg config.Config, s *store.Store) error {
			goal := findGoalByPrefix(s.Snapshot().Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}
			var milestoneID string
			for _, ms := range goal.Milestones {
				if ms.ID == args[1] || shortID(ms.ID) == args[1] {
					milestoneID = ms.ID
					break
				}
			}
			if milestoneID == "" {
				return fmt.Errorf("milestone %q not found in goal %s", args[1], shortID(goal.ID))
			}

			s.MoveMilestone(goal.ID, milestoneID, status)
			fmt.Fprintf(cmd.OutOrStdout(), "Moved milestone %s to %s\n", shortID(milestoneID), status)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(milestoneCmd)
	milestoneCmd.AddCommand(milestoneListCmd, milestoneMoveCmd)

	milestoneMoveCmd.Flags().StringVar(&milestoneStatus, "status", "", "Target status: todo, doing, or done")
	_ = milestoneMoveCmd.MarkFlagRequired("status")
}
