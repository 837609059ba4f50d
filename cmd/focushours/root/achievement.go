package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/service"
	"github.com/visionfocus/focushours/internal/ui"
)

func newAchievementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievement",
		Short: "Generate and mint planet achievements",
	}
	cmd.AddCommand(newAchievementSaveCmd(), newAchievementMintedCmd())
	return cmd
}

func newAchievementSaveCmd() *cobra.Command {
	var (
		year int
		in   domain.AchievementInput
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record the generated achievement of a planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				ach, err := a.repo.SaveAchievement(ctx, y, in)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), ach)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s achievement generated for %d", ui.IconTrophy, y)))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	cmd.Flags().StringVar(&in.ImageURL, "image", "", "Image URL of the artifact")
	cmd.Flags().StringVar(&in.TokenID, "token", "", "Token id, when already known")
	cmd.Flags().StringVar(&in.TransactionHash, "tx", "", "Transaction hash, when already known")
	return cmd
}

func newAchievementMintedCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "minted <token-id> <transaction-hash>",
		Short: "Mark a generated achievement as minted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				minter := service.ReceiptMinter{TokenID: args[0], TransactionHash: args[1]}
				ach, err := a.achievements.Mint(ctx, y, minter)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), ach)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(fmt.Sprintf("%s planet %d minted as %s", ui.IconTrophy, y, ach.TokenID)))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	return cmd
}
