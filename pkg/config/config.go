package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

type ProfilingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type PrometheusConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LoggingConfig struct {
	LogLevel string `mapstructure:"level"`
}

type HttpConfig struct {
	Port string `mapstructure:"port"`
}

type HarnessConfig struct {
	Input string `mapstructure:"input"`
}

type StatsConfig struct {
	WindowSize int `mapstructure:"window_size"`
}

type Config struct {
	Profiling  ProfilingConfig
	Prometheus PrometheusConfig
	Logging    LoggingConfig
	Http       HttpConfig
	Harness    HarnessConfig
	Stats      StatsConfig
}

func LoadConfig() (*Config, error) {
	var config Config

	// Unmarshal the config into the struct
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	return &config, nil
}

// ConfigureLogger points the global zerolog logger at stderr and applies the
// configured level, falling back to debug when the level can not be parsed.
func (c *Config) ConfigureLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	logLevel, err := zerolog.ParseLevel(c.Logging.LogLevel)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(logLevel)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func InitCobraCommand(runFunc func(cmd *cobra.Command, args []string)) *cobra.Command {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config file
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	// Enable environment variable support
	viper.AutomaticEnv()

	// Read the config file if found
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}

	var rootCmd = &cobra.Command{
		Use:   "ravl [file]",
		Short: "RAVL is a rank-aware ordered key/value index",
		Long: `RAVL keeps integer keys in a rank-augmented AVL tree. Keys can be
loaded from a file with one key per line, after which an interactive session
reads search, insert, delete, rank and find-rank commands from standard input.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runFunc,
	}

	// Command-line flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().Bool("profiling.enabled", false, "Enable CPU profiling")
	rootCmd.PersistentFlags().String("profiling.path", ".", "Directory for profile output")
	rootCmd.PersistentFlags().Bool("prometheus.enabled", false, "Enable Prometheus")
	rootCmd.PersistentFlags().String("logging.level", "warn", "Log level")
	rootCmd.PersistentFlags().String("http.port", "8000", "Port to run the HTTP server on")
	rootCmd.PersistentFlags().String("harness.input", "", "File with one key per line to load on start")
	rootCmd.PersistentFlags().Int("stats.window_size", 10, "Window size for operation rates in seconds")

	// Bind CLI flags to Viper settings
	viper.BindPFlag("profiling.enabled", rootCmd.PersistentFlags().Lookup("profiling.enabled"))
	viper.BindPFlag("profiling.path", rootCmd.PersistentFlags().Lookup("profiling.path"))
	viper.BindPFlag("prometheus.enabled", rootCmd.PersistentFlags().Lookup("prometheus.enabled"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("logging.level"))
	viper.BindPFlag("http.port", rootCmd.PersistentFlags().Lookup("http.port"))
	viper.BindPFlag("harness.input", rootCmd.PersistentFlags().Lookup("harness.input"))
	viper.BindPFlag("stats.window_size", rootCmd.PersistentFlags().Lookup("stats.window_size"))

	return rootCmd
}
