package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

// NewModeCmd creates the mode command group.
func NewModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Get or set the theme mode preference",
	}

	cmd.AddCommand(newModeGetCmd())
	cmd.AddCommand(newModeSetCmd())

	return cmd
}

func newModeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current theme mode and the active theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.Close()

			cli.AwaitReady()
			snap := cli.Resolver.Current()

			fmt.Printf("mode:   %s\n", snap.Mode)
			fmt.Printf("active: %s\n", snap.Theme.Mode)
			fmt.Printf("dark:   %t\n", snap.IsDark)
			fmt.Printf("scheme: %s\n", cli.Chain.CurrentScheme())
			return nil
		},
	}
}

func newModeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Set and persist the theme mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark", "system"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := entity.ParseThemeMode(args[0])
			if err != nil {
				return err
			}

			cli, err := NewCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.Close()

			// Settle the initial load first so its completion cannot land
			// after our write and clobber the new mode in memory.
			cli.AwaitReady()

			if err := cli.Resolver.SetThemeMode(cli.Context(), mode); err != nil {
				return err
			}

			snap := cli.Resolver.Current()
			fmt.Printf("mode set to %s (active theme: %s)\n", snap.Mode, snap.Theme.Mode)
			return nil
		},
	}
}
