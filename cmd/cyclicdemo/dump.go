package main

import (
	"os"

	"github.com/spf13/cobra"

	"cyclicmem/internal/demo"
	"cyclicmem/pkg/memory"
)

var dumpOut string

var dumpCmd = &cobra.Command{
	Use:   "dump <scenario>",
	Short: "Build a scenario's graph and write the root buffer as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOut, "out", "o", "", "write DOT output to a file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	if _, err := demo.Build(scenario, func(string) {}); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dumpOut != "" {
		f, err := os.Create(dumpOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memory.DumpRootBuffer(w)
	return nil
}
