package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cyclicmem/internal/demo"
	"cyclicmem/internal/telemetry"
	"cyclicmem/pkg/memory"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Build a scenario's graph, close its handles, then run the collector",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	log := telemetry.NewStderrLogger("run")
	log.Info().Str("scenario", scenario.Name).Str("description", scenario.Description).Msg("starting scenario")

	graph, err := demo.Build(scenario, telemetry.Reclaimer(log))
	if err != nil {
		return err
	}

	stats := memory.RootBufferStats()
	log.Info().Int("buffered", stats.Buffered).Int("purple", stats.Purple).Msg("root buffer before collection")

	memory.CollectCycles()

	stats = memory.RootBufferStats()
	log.Info().Int("buffered", stats.Buffered).Msg("root buffer after collection")

	if len(graph.Kept) > 0 {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, "still held by an external keep handle: ")
		for name := range graph.Kept {
			fmt.Fprintf(out, "%s ", name)
		}
		fmt.Fprintln(out)
	}
	return nil
}
