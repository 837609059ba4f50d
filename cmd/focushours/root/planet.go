package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
	"github.com/visionfocus/focushours/internal/ui"
)

func newPlanetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Create and inspect yearly planets",
	}
	cmd.AddCommand(
		newPlanetCreateCmd(),
		newPlanetListCmd(),
		newPlanetShowCmd(),
		newPlanetCurrentCmd(),
		newPlanetMilestoneCmd(),
	)
	return cmd
}

func newPlanetCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <year>",
		Short: "Create the planet for a year and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				p, err := a.planets.Create(ctx, year)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), p)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s planet %d created", ui.IconPlanet, p.Year)))
				return nil
			})
		},
	}
}

func newPlanetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				planets, err := a.repo.ListPlanets(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if jsonOutput(cmd) {
					return writeJSON(out, planets)
				}
				if len(planets) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("no planets yet; run `focushours planet create <year>`"))
					return nil
				}
				current, err := a.repo.GetCurrentYear(ctx)
				if err != nil {
					return err
				}
				for _, p := range planets {
					marker := " "
					if p.Year == current {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %d  %-7s %s  %s\n",
						marker, p.Year, ui.Hours(p.TotalHours), ui.TierBadge(tier.For(p.TotalHours)),
						ui.Muted.Render(fmt.Sprintf("%d wishes", len(p.Wishes))))
				}
				return nil
			})
		},
	}
}

func newPlanetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [year]",
		Short: "Show a planet (default: the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				year, err := resolveYear(ctx, a, args)
				if err != nil {
					return err
				}
				p, err := loadPlanet(ctx, a, year)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), p)
				}
				printPlanet(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
}

func newPlanetCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current [year]",
		Short: "Print the current year, or move the pointer to year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				if len(args) == 1 {
					year, err := parseYear(args[0])
					if err != nil {
						return err
					}
					if err := a.repo.SetCurrentYear(ctx, year); err != nil {
						return err
					}
					fmt.Fprintln(out, ui.LabelValue("Current planet", year))
					return nil
				}
				year, err := a.repo.GetCurrentYear(ctx)
				if err != nil {
					return err
				}
				if year == 0 {
					return errNoCurrentPlanet
				}
				fmt.Fprintln(out, year)
				return nil
			})
		},
	}
}

func newPlanetMilestoneCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "milestone <meditation|dream_fragments|vision_board>",
		Short: "Complete a lifecycle milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := domain.Milestone(args[0])
			if !m.Valid() {
				return domain.ErrInvalidMilestone
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				p, err := a.planets.CompleteMilestone(ctx, y, m)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), p)
				}
				for _, step := range domain.Milestones() {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Milestone(string(step), p.Completed(step)))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	return cmd
}

// yearFlag returns year, or the current year when the flag was left at 0.
func yearFlag(ctx context.Context, a *app, year int) (int, error) {
	if year != 0 {
		return year, domain.ValidateYear(year)
	}
	return resolveYear(ctx, a, nil)
}
