package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gauchobites/gauchobites/internal/cli/model"
)

// NewPickCmd creates the interactive mode picker command.
func NewPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick the theme mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.Close()

			cli.AwaitReady()

			picker := model.NewPickerModel(
				cli.Context(),
				cli.Resolver,
				cli.Catalog,
				cli.Chain.CurrentScheme(),
			)

			if _, err := tea.NewProgram(picker).Run(); err != nil {
				return fmt.Errorf("failed to run picker: %w", err)
			}
			return nil
		},
	}
}
