package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"mockdata/internal/platform/config"
	"mockdata/internal/platform/logger"
	"mockdata/internal/provisioning"
)

var (
	envFlag      string
	endpointFlag string
	pathsFlag    []string
	assetFlag    string
	timeoutFlag  time.Duration
	assembleFlag bool
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "mockdata",
	Short:         "Load, validate and inspect the demo finance dataset",
	SilenceUsage:  true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&envFlag, "env", "e", "", "Environment: server, browser or embedded (default $MOCKDATA_ENV or server)")
	flags.StringVar(&endpointFlag, "endpoint", "", "Dataset endpoint for the browser environment")
	flags.StringSliceVarP(&pathsFlag, "path", "p", nil, "Candidate dataset file for the server environment (repeatable)")
	flags.StringVar(&assetFlag, "asset", "", "Embedded asset name")
	flags.DurationVar(&timeoutFlag, "timeout", 0, "Network attempt timeout")
	flags.BoolVar(&assembleFlag, "assemble", false, "Fetch sections individually and assemble them")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log acquisition attempts to stderr")

	rootCmd.AddCommand(getCmd, validateCmd, sourcesCmd)
}

// loadConfig starts from the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("env") {
		cfg.Environment = envFlag
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpointFlag
	}
	if flags.Changed("path") {
		paths, err := config.ResolveLocalPaths(pathsFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LocalPaths = paths
	}
	if flags.Changed("asset") {
		cfg.Asset = assetFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	if flags.Changed("assemble") {
		cfg.AssembleSections = assembleFlag
	}
	return cfg, nil
}

func commandLogger(cmd *cobra.Command) *slog.Logger {
	if !verboseFlag {
		return slog.New(slog.DiscardHandler)
	}
	return logger.NewWithWriter(cmd.ErrOrStderr(), "debug", "text")
}

func build(cmd *cobra.Command) (*provisioning.Provisioner, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return provisioning.Build(cfg, provisioning.Deps{Logger: commandLogger(cmd)})
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
