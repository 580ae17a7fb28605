package goaleasy

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local goaleasy database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(cfg config.Config, sqldb *sql.DB) error {
			path, err := resolveDBPath(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized goaleasy database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
