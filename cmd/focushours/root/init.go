package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/config"
	"github.com/visionfocus/focushours/internal/schema"
	"github.com/visionfocus/focushours/internal/ui"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				location := a.cfg.Storage.Path
				if a.cfg.Storage.Driver == config.DriverPostgres {
					location = "postgres"
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconBox+" store ready"))
				fmt.Fprintln(out, ui.LabelValue("Driver", a.cfg.Storage.Driver))
				if location != "" {
					fmt.Fprintln(out, ui.LabelValue("Location", location))
				}
				fmt.Fprintln(out, ui.LabelValue("Data version", schema.CurrentVersion))
				return nil
			})
		},
	}
}
