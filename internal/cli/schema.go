package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gauchobites/gauchobites/internal/config"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
