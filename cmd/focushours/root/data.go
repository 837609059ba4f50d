package root

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
	"github.com/visionfocus/focushours/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize every planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				st, err := a.repo.GetAllStats(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if jsonOutput(cmd) {
					return writeJSON(out, st)
				}
				fmt.Fprintln(out, ui.Heading(ui.IconStar, "Stats"))
				fmt.Fprintln(out, ui.LabelValue("Years", st.TotalYears))
				fmt.Fprintln(out, ui.LabelValue("Wishes", st.TotalWishes))
				fmt.Fprintln(out, ui.LabelValue("Hours", ui.Hours(st.TotalHours)))
				fmt.Fprintln(out, ui.LabelValue("Minted", st.TotalAchievements))
				for _, y := range st.Yearly {
					minted := ""
					if y.Minted {
						minted = " " + ui.IconTrophy
					}
					fmt.Fprintf(out, "  %d  %-7s T%d  %s%s\n", y.Year, ui.Hours(y.Hours), y.Tier,
						ui.Muted.Render(fmt.Sprintf("%d wishes", y.Wishes)), minted)
				}
				return nil
			})
		},
	}
}

func newTierCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tier [hours]",
		Short: "Show the tier table, or the tier reached by an hour count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				hours, err := strconv.ParseFloat(args[0], 64)
				if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
					return fmt.Errorf("invalid hours %q", args[0])
				}
				if jsonOutput(cmd) {
					return writeJSON(out, tier.Describe(hours))
				}
				printTier(out, hours)
				return nil
			}
			tiers := tier.All()
			if jsonOutput(cmd) {
				return writeJSON(out, tiers)
			}
			for _, t := range tiers {
				bound := "∞"
				if t.Level < tier.Top {
					bound = ui.Hours(t.MaxHours)
				}
				fmt.Fprintf(out, "%s  %s - %s  %s\n", ui.TierBadge(t), ui.Hours(t.MinHours), bound, ui.Muted.Render(t.Effect))
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole state as a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				snap, err := a.repo.ExportAll(ctx)
				if err != nil {
					return err
				}
				if file == "" || file == "-" {
					return writeJSON(cmd.OutOrStdout(), snap)
				}
				f, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := writeJSON(f, snap); err != nil {
					_ = f.Close()
					return fmt.Errorf("write export file: %w", err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Good.Render(fmt.Sprintf("%s exported %d planets to %s", ui.IconBox, len(snap.Planets), file)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore sections of a JSON snapshot",
		Long:  "Import replaces every section present in the snapshot (user, planets, current planet) and merges settings. Absent sections are left alone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			var in domain.ImportSnapshot
			if err := json.Unmarshal(raw, &in); err != nil {
				return fmt.Errorf("parse snapshot %s: %w", args[0], err)
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.repo.ImportAll(ctx, in); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s imported %s", ui.IconBox, args[0])))
				return nil
			})
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every planet, the user and the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.repo.Clear(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" all data cleared"))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
