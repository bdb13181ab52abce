package cmd

import (
	"fmt"
	"os"

	"snake-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Invoked bare it behaves like `start`.
var RootCmd = &cobra.Command{
	Use:   "snake-server",
	Short: "Snake Game development server",
	Long: `Serves the Snake Game assets from the program's directory on
http://localhost:8000 with CORS enabled and caching disabled, and opens the
game in the default browser.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level for readable ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
			Color:  true,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
