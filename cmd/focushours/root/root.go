package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/ui"
)

const Version = "0.3.0"

// NewRootCmd builds the command tree. Each call returns a fresh tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "focushours",
		Short:         "Track yearly planets, wishes and focus hours",
		Long:          "focushours keeps one planet per year: a wish list, a vision board, focus records that grow the planet through five tiers, and an achievement once the year is done.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default ./focushours.yaml or ~/.config/focushours/focushours.yaml)")
	pf.String("driver", "", "Storage driver (memory|bolt|sqlite|postgres)")
	pf.String("db", "", "Database file for bolt and sqlite")
	pf.String("database-url", "", "Postgres connection URL")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (json|text)")
	pf.Bool("strict", false, "Reject references to unknown wish ids")
	pf.Bool("json", false, "Print results as JSON")

	cmd.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newPlanetCmd(),
		newWishesCmd(),
		newFocusCmd(),
		newBoardCmd(),
		newAchievementCmd(),
		newStatsCmd(),
		newTierCmd(),
		newExportCmd(),
		newImportCmd(),
		newSettingsCmd(),
		newUserCmd(),
		newResetCmd(),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
