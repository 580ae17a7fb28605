package goaleasy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/store"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage a goal's tasks",
}

var taskTitle string

var taskAddCmd = &cobra.Command{
	Use:   "add <goal-id>",
	Short: "Add a task to a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if taskTitle == "" {
			return fmt.Errorf("--title is required")
		}
		return withStore(func(cfg config.Config, s *store.Store) error {
			goal := findGoalByPrefix(s.Snapshot().Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}
			s.AddTask(goal.ID, taskTitle)
			fmt.Fprintf(cmd.OutOrStdout(), "Added task to goal %s\n", shortID(goal.ID))
			return nil
		})
	},
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <goal-id> <task-id>",
	Short: "Toggle a task done or undone",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			goal := findGoalByPrefix(s.Snapshot().Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}
			var taskID string
			for _, t := range goal.Tasks {
				if t.ID == args[1] || shortID(t.ID) == args[1] {
					taskID = t.ID
					break
				}
			}
			if taskID == "" {
				return fmt.Errorf("task %q not found in goal %s", args[1], shortID(goal.ID))
			}

			s.ToggleTask(goal.ID, taskID)

			state := s.Snapshot()
			for _, g := range state.Goals {
				if g.ID != goal.ID {
					continue
				}
				for _, t := range g.Tasks {
					if t.ID == taskID {
						if t.Done {
							fmt.Fprintf(cmd.OutOrStdout(), "Task done — streak is now %d\n", state.User.Streak)
						} else {
							fmt.Fprintln(cmd.OutOrStdout(), "Task reopened")
						}
					}
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskToggleCmd)

	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "Task title")
}
