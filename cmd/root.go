// Package cmd implements the portflow command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tkerdo/portflow/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "portflow",
	Short: "Berth and channel scheduling for port terminals",
	Long: "portflow plans berth assignments for arriving vessels: it corrects " +
		"declared ETAs, estimates operation times, proposes virtual-arrival " +
		"speeds, and searches for a conflict-free schedule under tide and " +
		"channel constraints.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
