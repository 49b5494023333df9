package main

import (
	"github.com/spf13/cobra"
)

var scenarioFile string

var rootCmd = &cobra.Command{
	Use:   "cyclicdemo",
	Short: "Build and collect cycle-collected reference graphs from a scenario file",
	Long: `cyclicdemo loads named graph scenarios from a YAML file and drives them
through pkg/memory's Strong/Weak handles and trial-deletion collector.

Examples:
  cyclicdemo run two-cycle
  cyclicdemo stats rescued-cycle
  cyclicdemo dump rescued-cycle`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&scenarioFile, "config", "c", "scenarios.yaml", "path to a scenario YAML file")
	rootCmd.AddCommand(runCmd, statsCmd, dumpCmd)
}
