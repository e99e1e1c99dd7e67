package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tngraf/tethys-docx-go/pkg/docx"
)

const version = "0.1.0"

var (
	flagConfig   string
	flagLogLevel string

	cfg    *Config
	logger *docx.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tethys-docx",
	Short:         "Helpers for editing Word (.docx) documents",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		logger = docx.NewLogger(os.Stderr, docx.ParseLogLevel(level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.tethys-docx/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error, off")
}
