package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"benchviz/internal/config"
	"benchviz/internal/extract"
	"benchviz/internal/report"
	"benchviz/internal/runner"
	"benchviz/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newExecutor allows mocking the process launch in tests.
var newExecutor = func() runner.Executor { return runner.NewExecExecutor() }

type runOptions struct {
	output  string
	timeout int // seconds; -1 means "use config", 0 disables
	dir     string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compile and run the comparison benchmark, then render the report",
		Long: `Invokes the external comparison benchmark in release mode, echoes its raw
output while extracting throughput records, and writes an interactive HTML
report. A failed run or an output with no parseable records produces no
report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, opts)
		},
	}
	addOutputFlag(cmd, &opts.output)
	cmd.Flags().IntVar(&opts.timeout, "timeout", -1, "Benchmark timeout in seconds (0 disables)")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Working directory for the benchmark process")
	return cmd
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "Report output path (default benchmark_report.html)")
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

// runPipeline is the full Runner -> Extractor -> Renderer sequence. Each
// failure kind is terminal: nothing is retried and no partial report is
// written.
func runPipeline(cmd *cobra.Command, opts *runOptions) error {
	out := cmd.OutOrStdout()

	timeout := viper.GetInt("benchmark.timeout")
	if opts.timeout >= 0 {
		timeout = opts.timeout
	}
	dir := config.BenchmarkDir()
	if opts.dir != "" {
		dir = opts.dir
	}

	bench := &runner.Benchmark{
		Executor: newExecutor(),
		Command:  config.Command(),
		Dir:      dir,
		Timeout:  time.Duration(timeout) * time.Second,
	}

	fmt.Fprintln(out, ui.Info("Compiling and running comparison benchmark... (this may take 2-3 minutes)"))

	result, err := bench.Run(cmd.Context())
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(out, ui.Error("Error running benchmark:"))
			fmt.Fprintln(out, exitErr.Stderr)
		} else {
			fmt.Fprintln(out, ui.Error(fmt.Sprintf("Failed to execute benchmark: %v", err)))
		}
		return err
	}
	if result.Stderr != "" {
		slog.Debug("benchmark stderr", "stderr", result.Stderr)
	}

	return renderReport(cmd, opts.output, result.Stdout)
}

// renderReport echoes the raw output line by line while extracting records,
// then derives and writes the chart document. An empty output falls back to
// the configured report path.
func renderReport(cmd *cobra.Command, output, raw string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Benchmark raw output:")
	ds := extract.NewDataset()
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Fprintln(out, ui.Echo(line))
		if oc := extract.Classify(line); oc.Matched {
			ds.Append(oc.Record)
		} else {
			slog.Debug("line skipped", "reason", oc.Reason.String())
		}
	}
	slog.Debug("parsed benchmark output", "implementations", len(ds.Implementations()), "records", ds.Size())

	model, err := report.Builder{
		Title:    viper.GetString("report.title"),
		Subtitle: viper.GetString("report.subtitle"),
	}.Build(ds)
	if err != nil {
		fmt.Fprintln(out, ui.Error("No data to plot."))
		return err
	}

	fmt.Fprintln(out)
	printSummary(out, ds)

	outputPath := viper.GetString("report.output")
	if output != "" {
		outputPath = output
	}
	abs, err := model.WriteFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Success("Successfully generated report: ")+ui.Path(abs))
	fmt.Fprintln(out, "Open this file in your browser to see the performance graph.")
	return nil
}

func printSummary(w io.Writer, ds *extract.Dataset) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "IMPLEMENTATION\tSAMPLES\tTHREADS\tPEAK OPS/SEC")
	for _, name := range ds.Implementations() {
		recs := ds.Samples(name)
		peak := 0.0
		threads := make([]string, len(recs))
		for i, r := range recs {
			threads[i] = strconv.Itoa(r.Threads)
			if r.Throughput > peak {
				peak = r.Throughput
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\n", name, len(recs), strings.Join(threads, ","), peak)
	}
	tw.Flush()
}
