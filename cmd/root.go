package cmd

import (
	"fmt"
	"os"

	"craft-planner/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "craft-planner",
	Short: "Crafting Procurement Planner",
	Long: `Craft Planner decides, for every item in a crafting tree, whether buying it on the
market board or crafting it is cheaper, and tracks owned materials per crafting goal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var jsonOutput bool

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}
