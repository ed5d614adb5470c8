package main

import (
	"fmt"
	"os"

	"benchviz/internal/config"
	"benchviz/internal/telemetry"
	"benchviz/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// Bare invocation runs the full pipeline with defaults, so the common case
// stays a single command with no arguments.
var rootCmd = &cobra.Command{
	Use:   "benchviz",
	Short: "Run the cache comparison benchmark and plot the results",
	Long: `benchviz drives the pre-built cache comparison benchmark, harvests its
textual output, and renders a self-contained interactive throughput report
you can open in a browser.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd, &runOptions{timeout: -1})
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}
