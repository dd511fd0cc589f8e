package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gauchobites/gauchobites/internal/config"
	"github.com/gauchobites/gauchobites/internal/infrastructure/colorscheme"
	"github.com/gauchobites/gauchobites/internal/logging"
	"github.com/gauchobites/gauchobites/internal/theme"
)

// NewWatchCmd creates the watch command: it keeps a live resolver running
// and prints every theme change until interrupted. Useful for verifying
// that OS scheme changes are picked up on a given desktop.
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow theme changes until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.Close()

			ctx, stop := signal.NotifyContext(cli.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			unsubscribe := cli.Resolver.Subscribe(func(snap theme.Snapshot) {
				fmt.Printf("theme changed: mode=%s active=%s dark=%t\n", snap.Mode, snap.Theme.Mode, snap.IsDark)
			})
			defer unsubscribe()

			// Follow config file edits too: logging changes apply live,
			// everything else (palette overlays) needs a restart because
			// the catalog is fixed after startup.
			cli.Manager.OnConfigChange(func(cfg *config.Config) {
				fmt.Printf("config changed: log level=%s (appearance changes apply on next start)\n", cfg.Logging.Level)
			})
			if err := cli.Manager.Watch(); err != nil {
				return err
			}

			cli.AwaitReady()
			snap := cli.Resolver.Current()
			fmt.Printf("watching (mode=%s active=%s dark=%t), ctrl-c to stop\n", snap.Mode, snap.Theme.Mode, snap.IsDark)

			g, ctx := errgroup.WithContext(ctx)
			monitor := colorscheme.NewMonitor(cli.Chain)
			g.Go(func() error {
				return monitor.Run(logging.WithComponent(ctx, "monitor"))
			})

			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
