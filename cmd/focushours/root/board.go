package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/ui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage the vision board of a planet",
	}
	cmd.AddCommand(newBoardSaveCmd())
	return cmd
}

func newBoardSaveCmd() *cobra.Command {
	var (
		year int
		file string
	)
	cmd := &cobra.Command{
		Use:   "save --file board.json",
		Short: "Replace the vision board of a planet from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read board file: %w", err)
			}
			var board domain.VisionBoard
			if err := json.Unmarshal(raw, &board); err != nil {
				return fmt.Errorf("parse board file %s: %w", file, err)
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				saved, err := a.repo.SaveVisionBoard(ctx, y, board)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), saved)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s board saved: %d items, %s layout",
					ui.IconBoard, len(saved.Items), saved.Layout)))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the board layout and items")
	return cmd
}
