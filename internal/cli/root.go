// Package cli provides the command-line interface for the gauchobites
// theming engine.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gauchobites/gauchobites/internal/config"
	"github.com/gauchobites/gauchobites/internal/infrastructure/colorscheme"
	"github.com/gauchobites/gauchobites/internal/infrastructure/persistence/sqlite"
	"github.com/gauchobites/gauchobites/internal/logging"
	"github.com/gauchobites/gauchobites/internal/theme"
	"github.com/gauchobites/gauchobites/internal/theme/catalog"
)

// readyTimeout bounds how long one-shot commands wait for the persisted
// preference to load before reporting the provisional mode.
const readyTimeout = 2 * time.Second

// CLI holds the wired theming engine for the commands.
type CLI struct {
	Config   *config.Config
	Manager  *config.Manager
	Catalog  *catalog.Catalog
	Resolver *theme.Resolver
	Chain    *colorscheme.Chain

	ctx context.Context
	db  *sql.DB
}

// NewCLI wires config, logging, the preference store, the scheme chain and
// the resolver.
func NewCLI(ctx context.Context) (*CLI, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := manager.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx = logging.WithContext(ctx, logger)

	cat, err := catalog.FromConfig(&cfg.Appearance)
	if err != nil {
		return nil, fmt.Errorf("failed to build theme catalog: %w", err)
	}

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	chain := colorscheme.NewPlatformChain()
	resolver := theme.New(logging.WithComponent(ctx, "resolver"), cat, sqlite.NewPreferenceRepository(db), chain)
	resolver.Initialize(ctx)

	return &CLI{
		Config:   cfg,
		Manager:  manager,
		Catalog:  cat,
		Resolver: resolver,
		Chain:    chain,
		ctx:      ctx,
		db:       db,
	}, nil
}

// Context returns the CLI context with the logger attached.
func (c *CLI) Context() context.Context {
	return c.ctx
}

// AwaitReady waits for the one-shot preference load, bounded by
// readyTimeout so a hung store never blocks a command.
func (c *CLI) AwaitReady() {
	select {
	case <-c.Resolver.Ready():
	case <-time.After(readyTimeout):
		logging.FromContext(c.ctx).Warn().Msg("preference load did not settle in time, using provisional mode")
	}
}

// Close drains pending preference writes, then releases the resolver and
// the preference store.
func (c *CLI) Close() {
	c.Resolver.Flush()
	c.Resolver.Close()
	if err := sqlite.Close(c.db); err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Msg("failed to close preference store")
	}
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gauchobites-theme",
		Short: "Inspect and switch the gauchobites theme preference",
		Long: `gauchobites-theme resolves the active visual theme for the gauchobites app:
it reconciles the persisted user preference with the OS color scheme and
persists changes across restarts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flags override the environment so NewCLI picks them up
			// through the config manager's env bindings.
			if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
				if err := os.Setenv("GAUCHOBITES_CONFIG", configFile); err != nil {
					return err
				}
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				if err := os.Setenv("GAUCHOBITES_LOG_LEVEL", level); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(NewModeCmd())
	rootCmd.AddCommand(NewPreviewCmd())
	rootCmd.AddCommand(NewPickCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(NewVersionCmd(version, commit, buildDate))

	return rootCmd
}
