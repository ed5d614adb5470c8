package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("BENCHVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// SetDefaults registers the baseline settings for every pipeline stage.
func SetDefaults() {
	// "release, comparison-benchmark" invocation of the external benchmark
	viper.SetDefault("benchmark.command", "cargo run --release --example benchmark_compare")
	viper.SetDefault("benchmark.dir", "")
	viper.SetDefault("benchmark.timeout", 900)

	viper.SetDefault("report.output", "benchmark_report.html")
	viper.SetDefault("report.title", "High-Performance Cache Comparison")
	viper.SetDefault("report.subtitle", "Workload: 90% GET, 10% PUT | 100k Items | 200k Keys")

	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}

// Command returns the configured benchmark invocation in argv form.
func Command() []string {
	return strings.Fields(viper.GetString("benchmark.command"))
}

// BenchmarkDir resolves the working directory for the benchmark process. It
// defaults to the directory of the tool's own executable so relative build
// artifacts resolve correctly no matter where the tool is invoked from.
func BenchmarkDir() string {
	if dir := viper.GetString("benchmark.dir"); dir != "" {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
