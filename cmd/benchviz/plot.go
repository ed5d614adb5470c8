package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPlotCmd() *cobra.Command {
	// plot never launches the benchmark, so of the run flags only the
	// output path applies here.
	var output string
	cmd := &cobra.Command{
		Use:   "plot <output-file>",
		Short: "Render a report from previously captured benchmark output",
		Long: `Skips the benchmark run and builds the report from a file containing raw
benchmark stdout, using the same extraction grammar and renderer as 'run'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read benchmark output: %w", err)
			}
			return renderReport(cmd, output, string(raw))
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func init() {
	rootCmd.AddCommand(newPlotCmd())
}
