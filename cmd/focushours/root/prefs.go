package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/redact"
	"github.com/visionfocus/focushours/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change device settings",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())
	return cmd
}

func printSettings(cmd *cobra.Command, s *domain.Settings) error {
	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return writeJSON(out, s)
	}
	fmt.Fprintln(out, ui.LabelValue("Volume", s.Volume))
	fmt.Fprintln(out, ui.LabelValue("Auto save", s.AutoSave))
	fmt.Fprintln(out, ui.LabelValue("Skip meditation", s.SkipMeditation))
	fmt.Fprintln(out, ui.LabelValue("Debug mode", s.DebugMode))
	return nil
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				s, err := a.repo.GetSettings(ctx)
				if err != nil {
					return err
				}
				return printSettings(cmd, s)
			})
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		volume                  float64
		autoSave, skip, debugOn bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the settings given as flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.SettingsPatch
			if cmd.Flags().Changed("volume") {
				patch.Volume = &volume
			}
			if cmd.Flags().Changed("autosave") {
				patch.AutoSave = &autoSave
			}
			if cmd.Flags().Changed("skip-meditation") {
				patch.SkipMeditation = &skip
			}
			if cmd.Flags().Changed("debug") {
				patch.DebugMode = &debugOn
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				s, err := a.repo.UpdateSettings(ctx, patch)
				if err != nil {
					return err
				}
				return printSettings(cmd, s)
			})
		},
	}
	cmd.Flags().Float64Var(&volume, "volume", 0, "Volume in [0,1]")
	cmd.Flags().BoolVar(&autoSave, "autosave", false, "Save automatically")
	cmd.Flags().BoolVar(&skip, "skip-meditation", false, "Skip the meditation step")
	cmd.Flags().BoolVar(&debugOn, "debug", false, "Enable debug mode")
	return cmd
}

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show or change the device owner",
	}
	cmd.AddCommand(newUserShowCmd(), newUserSetCmd())
	return cmd
}

func printUser(cmd *cobra.Command, u *domain.User) error {
	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return writeJSON(out, u)
	}
	wallet := u.Wallet
	if wallet == "" {
		wallet = ui.Muted.Render("none")
	}
	fmt.Fprintln(out, ui.LabelValue("Nickname", u.Nickname))
	fmt.Fprintln(out, ui.LabelValue("Wallet", wallet))
	fmt.Fprintln(out, ui.LabelValue("Since", u.CreatedAt.Time().Format("2006-01-02")))
	return nil
}

func newUserShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				u, err := a.repo.GetUser(ctx)
				if err != nil {
					return err
				}
				return printUser(cmd, u)
			})
		},
	}
}

func newUserSetCmd() *cobra.Command {
	var wallet, nickname string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the wallet or nickname",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.UserPatch
			if cmd.Flags().Changed("wallet") {
				patch.Wallet = &wallet
			}
			if cmd.Flags().Changed("nickname") {
				patch.Nickname = &nickname
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				u, err := a.repo.UpdateUser(ctx, patch)
				if err != nil {
					return err
				}
				a.log.Info("user updated", "wallet", redact.String(u.Wallet))
				return printUser(cmd, u)
			})
		},
	}
	cmd.Flags().StringVar(&wallet, "wallet", "", "Wallet address")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Display name")
	return cmd
}
