package goaleasy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/store"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Show or set the UI language",
}

var langShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active language",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.Snapshot().Language)
			return nil
		})
	},
}

var langSetCmd = &cobra.Command{
	Use:   "set <en|hi>",
	Short: "Set the UI language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := model.ParseLanguage(args[0])
		if err != nil {
			return err
		}
		return withStore(func(cfg config.Config, s *store.Store) error {
			s.SetLanguage(lang)
			fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s\n", lang)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
	langCmd.AddCommand(langShowCmd, langSetCmd)
}
