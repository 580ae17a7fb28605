package goaleasy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/i18n"
	"github.com/tiwariank/goaleasy/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the local profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			state := s.Snapshot()
			t := i18n.For(state.Language)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state.User.Avatar, state.User.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "🔥 %d %s\n", state.User.Streak, t.Streak)
			fmt.Fprintf(cmd.OutOrStdout(), "Goals: %d\n", len(state.Goals))
			return nil
		})
	},
}

var (
	profileName   string
	profileAvatar string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit profile name and avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.Config, s *store.Store) error {
			// Streak and progress stay core-owned; only identity fields are
			// editable here.
			user := s.Snapshot().User
			if cmd.Flags().Changed("name") {
				user.Name = profileName
			}
			if cmd.Flags().Changed("avatar") {
				user.Avatar = profileAvatar
			}
			s.SetUser(user)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %s %s\n", user.Avatar, user.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar emoji")
}
