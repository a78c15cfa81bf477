/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pagemigrate/core/config"
	"github.com/tristendillon/pagemigrate/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pagemigrate",
	Short: "Migrates page components from react-router to the Next.js App Router.",
	Long: `pagemigrate rewrites a fixed set of page components in place:
react-router navigation and outlet-context hooks become next/navigation and
the app store, and relative imports move to the @/ alias.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile == "" {
			return nil
		}
		closer, err := logger.OpenLogFile(logfile)
		if err != nil {
			return err
		}
		logCloser = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		err := logCloser.Close()
		logCloser = nil
		return err
	},
}

var logfile string
var verbose bool
var configPath string
var logCloser io.Closer

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when RunE fails.
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./"+config.FileName+")")
}
