package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/ui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Record focus time",
	}
	cmd.AddCommand(newFocusAddCmd())
	return cmd
}

func newFocusAddCmd() *cobra.Command {
	var (
		year   int
		wishID string
		note   string
	)
	cmd := &cobra.Command{
		Use:   "add <hours>",
		Short: "Add a focus record to a planet, optionally toward a wish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[0])
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				res, err := a.focus.Record(ctx, y, wishID, hours, note)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if jsonOutput(cmd) {
					return writeJSON(out, res)
				}
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s +%s focus recorded", ui.IconHourglass, ui.Hours(res.Record.Hours))))
				printTier(out, res.TotalHours)
				for _, t := range res.Reached {
					fmt.Fprintf(out, "%s %s %s\n", ui.IconStar, ui.BadgeTierUp, ui.TierBadge(t))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	cmd.Flags().StringVarP(&wishID, "wish", "w", "", "Wish id the time counts toward")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Free-text note")
	return cmd
}
