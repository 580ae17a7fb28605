package goaleasy

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/notify"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Inspect and dispatch scheduled notifications",
}

var notifyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(cfg config.Config, sqldb *sql.DB) error {
			pending, err := notify.NewScheduler(sqldb).Pending(cmd.Context())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending notifications")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "FIRE AT\tCHANNEL\tTITLE")
			for _, n := range pending {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.FireAt.Local().Format("2006-01-02 15:04"), n.Channel, n.Title)
			}
			return nil
		})
	},
}

var notifyDispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Print due notifications and mark them delivered",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(cfg config.Config, sqldb *sql.DB) error {
			scheduler := notify.NewScheduler(sqldb)
			due, err := scheduler.DueBefore(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing due")
				return nil
			}
			for _, n := range due {
				fmt.Fprintf(cmd.OutOrStdout(), "🔔 %s — %s\n", n.Title, n.Body)
				if err := scheduler.MarkDelivered(cmd.Context(), n.ID); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyListCmd, notifyDispatchCmd)
}
