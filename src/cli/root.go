// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/H0llyW00dzZ/buffered-iterator/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrUnknownMode is returned for a --mode other than buffered or allocating.
	ErrUnknownMode = errors.New("unknown parser mode")
	// ErrUnknownFormat is returned for an unsupported --format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrInvalidSize is returned when a --sizes entry is not a byte size.
	ErrInvalidSize = errors.New("invalid size")
)

// app carries state shared by every command of one invocation.
type app struct {
	version    string
	log        logger.Logger
	configPath string
	logFormat  string
	cfg        *Config
}

// Execute runs the command line with os.Args and returns the first error.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return newRootCmd(version, log).ExecuteContext(ctx)
}

func newRootCmd(version string, log logger.Logger) *cobra.Command {
	a := &app{version: version, log: log, cfg: defaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "buffered-iterator",
		Short: "Parse length-prefixed record streams with a reusable buffer",
		Long: `buffered-iterator reads streams of [1-byte length][payload] records.

Run without a subcommand to parse a small built-in stream.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (.json, .yaml, .yml); defaults to $"+configEnv)
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", logger.FormatText, "log format: text or json")

	rootCmd.AddCommand(
		a.newDemoCmd(),
		a.newParseCmd(),
		a.newGenerateCmd(),
		a.newBenchCmd(),
	)
	return rootCmd
}

// setup loads the config and installs the logger chosen by it or by --log-format.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	format := stringFlag(cmd, "log-format", cfg.Log.Format)
	if !slices.Contains(logFormats, format) {
		return fmt.Errorf("%w: --log-format %q", ErrUnknownFormat, format)
	}
	if format == logger.FormatJSON {
		if a.log, err = logger.New(format, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	return nil
}

// stringFlag returns the flag value when it was set on the command line,
// otherwise fallback.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func uint64Flag(cmd *cobra.Command, name string, fallback uint64) uint64 {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetUint64(name)
	return v
}

func stringSliceFlag(cmd *cobra.Command, name string, fallback []string) []string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}
