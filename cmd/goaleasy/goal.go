package goaleasy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/i18n"
	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals and their milestone plans",
}

var (
	goalTitle      string
	goalSize       string
	goalTargetDate string
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal with seed tasks and a milestone plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if goalTitle == "" {
			return fmt.Errorf("--title is required")
		}
		size := model.SizeMedium
		if goalSize != "" {
			var err error
			size, err = model.ParseGoalSize(goalSize)
			if err != nil {
				return err
			}
		}
		targetDate, err := parseTargetDate(goalTargetDate)
		if err != nil {
			return err
		}

		return withStore(func(cfg config.Config, s *store.Store) error {
			goal := s.AddGoal(store.AddGoalInput{Title: goalTitle, Size: size, TargetDate: targetDate})
			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s (%s, %d milestones)\n", shortID(goal.ID), goal.Size, len(goal.Milestones))
			return nil
		})
	},
}

var goalListFilter string

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals for the active filter window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			state := s.Snapshot()
			if goalListFilter != "" {
				f, err := model.ParseFilter(goalListFilter)
				if err != nil {
					return err
				}
				s.SetFilter(f)
				state.Filter = f
			}

			t := i18n.For(state.Language)
			goals := s.FilteredGoals()
			fmt.Fprintf(cmd.OutOrStdout(), "%s — 🔥 %d %s\n", i18n.FilterLabel(state.Language, state.Filter), state.User.Streak, t.Streak)
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tSIZE\tPROGRESS\tDAYS LEFT")
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f%%\t%d %s\n",
					shortID(g.ID), g.Title, g.Size, store.Progress(g), s.DaysLeft(g), t.DaysRemaining)
			}
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <goal-id>",
	Short: "Show a goal with its tasks and milestones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			state := s.Snapshot()
			goal := findGoalByPrefix(state.Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}

			t := i18n.For(state.Language)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", goal.Title, goal.Size)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.0f%% — %d %s\n", t.GoalProgress, store.Progress(*goal), s.DaysLeft(*goal), t.DaysRemaining)
			fmt.Fprintln(cmd.OutOrStdout(), "\nTasks:")
			for _, task := range goal.Tasks {
				mark := " "
				if task.Done {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s  %s\n", mark, shortID(task.ID), task.Title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nMilestones:")
			for _, ms := range goal.Milestones {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-5s  %s  (%s)\n", shortID(ms.ID), ms.Status, ms.Title, ms.Date)
			}
			return nil
		})
	},
}

var goalCurrent float64

var goalUpdateCmd = &cobra.Command{
	Use:   "update <goal-id>",
	Short: "Update goal fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch store.GoalPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &goalTitle
		}
		if cmd.Flags().Changed("size") {
			size, err := model.ParseGoalSize(goalSize)
			if err != nil {
				return err
			}
			patch.Size = &size
		}
		if cmd.Flags().Changed("target-date") {
			targetDate, err := parseTargetDate(goalTargetDate)
			if err != nil {
				return err
			}
			patch.TargetDate = targetDate
		}
		if cmd.Flags().Changed("current") {
			patch.Current = &goalCurrent
		}

		return withStore(func(cfg config.Config, s *store.Store) error {
			goal := findGoalByPrefix(s.Snapshot().Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}
			s.UpdateGoal(goal.ID, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s\n", shortID(goal.ID))
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <goal-id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			goal := findGoalByPrefix(s.Snapshot().Goals, args[0])
			if goal == nil {
				return fmt.Errorf("goal %q not found", args[0])
			}
			s.DeleteGoal(goal.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", shortID(goal.ID))
			return nil
		})
	},
}

// findGoalByPrefix resolves a full or shortened goal id.
func findGoalByPrefix(goals []model.Goal, prefix string) *model.Goal {
	for i := range goals {
		if goals[i].ID == prefix || shortID(goals[i].ID) == prefix {
			return &goals[i]
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalShowCmd, goalUpdateCmd, goalDeleteCmd)

	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	goalAddCmd.Flags().StringVar(&goalSize, "size", "medium", "Goal size: small, medium, or big")
	goalAddCmd.Flags().StringVar(&goalTargetDate, "target-date", "", "Target date (YYYY-MM-DD)")

	goalListCmd.Flags().StringVar(&goalListFilter, "filter", "", "Filter window: today, week, month, or all")

	goalUpdateCmd.Flags().StringVar(&goalTitle, "title", "", "New title")
	goalUpdateCmd.Flags().StringVar(&goalSize, "size", "", "New size")
	goalUpdateCmd.Flags().StringVar(&goalTargetDate, "target-date", "", "New target date (YYYY-MM-DD)")
	goalUpdateCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Current progress value")
}
