// Command gauchobites-theme inspects and switches the persisted theme
// preference for the gauchobites app.
package main

import (
	"context"
	"os"

	"github.com/gauchobites/gauchobites/internal/cli"
	"github.com/gauchobites/gauchobites/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())

	rootCmd := cli.NewRootCmd(version, commit, buildDate)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
