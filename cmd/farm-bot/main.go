// Package main provides the CLI entrypoint for farm-bot.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultSettingsPath    = "Settings.ini"
	defaultCalibrationPath = "cache.json"
)

var (
	setupMode       bool
	settingsPath    string
	calibrationPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "farm-bot",
		Short:        "Searches for loot-rich bases and attacks them until the goals are reached",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runRootCmd,
	}

	rootCmd.Flags().BoolVar(&setupMode, "setup", false, "run the calibration wizard instead of farming")
	rootCmd.Flags().StringVar(&settingsPath, "settings", defaultSettingsPath, "settings file")
	rootCmd.Flags().StringVar(&calibrationPath, "calibration", defaultCalibrationPath, "calibration file")

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	closer, err := setupLogging(settings)
	if err != nil {
		return err
	}
	defer closer.Close()

	if setupMode {
		return runSetup(cmd, calibrationPath)
	}
	return runFarm(cmd.Context(), settings, calibrationPath)
}
