package root

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/api"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				h := api.NewHandler(a.repo, a.focus, a.planets, a.achievements, a.log)
				srv := api.NewServer(a.cfg.Server.Addr, api.NewRouter(h, a.log), a.log)
				return srv.Run(ctx)
			})
		},
	}
}
