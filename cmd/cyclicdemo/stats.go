package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cyclicmem/internal/demo"
	"cyclicmem/pkg/memory"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats <scenario>",
	Short: "Build a scenario's graph and report the root buffer before collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print stats as JSON instead of text")
}

func runStats(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	if _, err := demo.Build(scenario, func(string) {}); err != nil {
		return err
	}

	stats := memory.RootBufferStats()
	if statsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "buffered=%d purple=%d gray=%d white=%d black=%d\n",
		stats.Buffered, stats.Purple, stats.Gray, stats.White, stats.Black)
	return nil
}
