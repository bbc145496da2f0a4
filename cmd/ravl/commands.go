package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/kgantsov/ravl/pkg/config"
	"github.com/kgantsov/ravl/pkg/harness"
	"github.com/kgantsov/ravl/pkg/http"
	"github.com/kgantsov/ravl/pkg/index"
)

func NewCmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the index over HTTP",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := config.LoadConfig()
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				return
			}

			config.ConfigureLogger()
			defer startProfiling(config).Stop()

			undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
				log.Debug().Msgf(format, args...)
			}))
			defer undo()
			if err != nil {
				log.Warn().Err(err).Msg("Failed to set GOMAXPROCS")
			}

			registry := prometheus.NewRegistry()
			idx := index.NewIndex(registry, config.Stats.WindowSize)
			idx.StartStats()
			defer idx.Close()

			if filename := inputFile(config, args); filename != "" {
				// the load report goes nowhere, keys are logged at debug level
				h := harness.NewHarness(idx, nil, io.Discard)
				if err := loadFile(h, filename); err != nil {
					log.Fatal().Err(err).Msgf("Failed to load keys from %s", filename)
				}
				log.Info().Msgf("Loaded %d keys from %s", idx.Stats().Size, filename)
			}

			service := http.NewHttpService(config, idx, registry)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-quit
				log.Info().Msg("Shutting down HTTP service")
				if err := service.Shutdown(); err != nil {
					log.Error().Err(err).Msg("Failed to shut down HTTP service")
				}
			}()

			log.Info().Msgf("Starting HTTP service on port %s", config.Http.Port)
			if err := service.Start(); err != nil {
				log.Error().Msgf("failed to start HTTP service: %s", err.Error())
			}
		},
	}

	return cmd
}

func NewCmdPrint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Build a tree from a file of keys and print it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := config.LoadConfig()
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				return
			}

			config.ConfigureLogger()

			idx := index.NewIndex(prometheus.NewRegistry(), config.Stats.WindowSize)
			defer idx.Close()

			h := harness.NewHarness(idx, nil, io.Discard)
			if err := loadFile(h, args[0]); err != nil {
				fmt.Printf("Error loading keys: %v\n", err)
				return
			}

			if err := idx.Print(cmd.OutOrStdout()); err != nil {
				fmt.Printf("Error printing tree: %v\n", err)
			}
		},
	}

	return cmd
}
