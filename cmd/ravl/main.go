package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kgantsov/ravl/pkg/config"
	"github.com/kgantsov/ravl/pkg/harness"
	"github.com/kgantsov/ravl/pkg/index"
)

func startProfiling(config *config.Config) interface{ Stop() } {
	if !config.Profiling.Enabled {
		return nopStopper{}
	}
	log.Info().Msgf("Writing CPU profile to %s", config.Profiling.Path)
	return profile.Start(profile.CPUProfile, profile.ProfilePath(config.Profiling.Path), profile.Quiet)
}

type nopStopper struct{}

func (nopStopper) Stop() {}

func inputFile(config *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.Harness.Input
}

func Run(cmd *cobra.Command, args []string) {
	config, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	config.ConfigureLogger()
	defer startProfiling(config).Stop()

	idx := index.NewIndex(prometheus.NewRegistry(), config.Stats.WindowSize)
	h := harness.NewHarness(idx, os.Stdin, os.Stdout)

	if filename := inputFile(config, args); filename != "" {
		if err := loadFile(h, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open the specified input file: %s\n", filename)
			log.Error().Err(err).Msg("Failed to load keys")
			idx.Close()
			return
		}
	} else {
		fmt.Println("You did not specify an input file. We will start with an empty tree.")
	}

	if err := h.Run(); err != nil {
		log.Error().Err(err).Msg("Session ended with an error")
	}
}

func loadFile(h *harness.Harness, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return h.Load(file)
}

func main() {
	rootCmd := config.InitCobraCommand(Run)
	rootCmd.AddCommand(NewCmdServe(), NewCmdPrint())

	if err := rootCmd.Execute(); err != nil {
		log.Warn().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
