package root

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
	"github.com/visionfocus/focushours/internal/repository"
	"github.com/visionfocus/focushours/internal/ui"
)

var errNoCurrentPlanet = errors.New("no current planet; pass a year")

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	if err := domain.ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

// resolveYear takes the year from the first argument, or from the current
// planet pointer when there is none. A pointer naming a year without a
// planet counts as no current planet.
func resolveYear(ctx context.Context, a *app, args []string) (int, error) {
	if len(args) > 0 {
		return parseYear(args[0])
	}
	year, err := a.repo.GetCurrentYear(ctx)
	if err != nil {
		return 0, err
	}
	if year == 0 {
		return 0, errNoCurrentPlanet
	}
	p, err := a.repo.GetPlanet(ctx, year)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, fmt.Errorf("%w (current year %d has none)", errNoCurrentPlanet, year)
	}
	return year, nil
}

// loadPlanet returns the planet for year or ErrPlanetNotFound.
func loadPlanet(ctx context.Context, a *app, year int) (*domain.Planet, error) {
	p, err := a.repo.GetPlanet(ctx, year)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %d", repository.ErrPlanetNotFound, year)
	}
	return p, nil
}

func printTier(w io.Writer, hours float64) {
	s := tier.Describe(hours)
	fmt.Fprintln(w, ui.LabelValue("Hours", ui.Hours(hours)))
	fmt.Fprintln(w, ui.LabelValue("Tier", ui.TierBadge(s.Tier)))
	fmt.Fprintln(w, ui.LabelValue("Progress", ui.ProgressBar(s.Progress, 20)))
	if s.Tier.Level < tier.Top {
		fmt.Fprintln(w, ui.LabelValue("Next tier in", ui.Hours(s.HoursToNext)))
	}
}

func printWish(w io.Writer, wish domain.Wish) {
	fmt.Fprintf(w, "  %s %s %s %s\n",
		ui.IconWish,
		ui.Key.Render(wish.ID),
		wish.Text,
		ui.Muted.Render(fmt.Sprintf("(%s, %s)", wish.Category, ui.Hours(wish.FocusHours))))
}

func printPlanet(w io.Writer, p *domain.Planet) {
	fmt.Fprintln(w, ui.Heading(ui.IconPlanet, fmt.Sprintf("Planet %d", p.Year)))
	printTier(w, p.TotalHours)

	fmt.Fprintln(w, ui.H2.Render("Milestones"))
	for _, m := range domain.Milestones() {
		fmt.Fprintln(w, "  "+ui.Milestone(string(m), p.Completed(m)))
	}

	fmt.Fprintln(w, ui.H2.Render(fmt.Sprintf("Wishes (%d)", len(p.Wishes))))
	for _, wish := range p.Wishes {
		printWish(w, wish)
	}

	if len(p.VisionBoard.Items) > 0 {
		fmt.Fprintln(w, ui.LabelValue(ui.IconBoard+" Board", fmt.Sprintf("%d items, %s layout", len(p.VisionBoard.Items), p.VisionBoard.Layout)))
	}
	if a := p.Achievement; a.Generated {
		state := ui.Warn.Render("not minted")
		if a.Minted {
			state = ui.Gold.Render("minted " + a.TokenID)
		}
		fmt.Fprintln(w, ui.LabelValue(ui.IconTrophy+" Achievement", state))
	}
}
