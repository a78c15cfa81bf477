/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pagemigrate/core/batch"
	"github.com/tristendillon/pagemigrate/core/logger"
)

var errStrict = errors.New("some files were missing or matched no legacy pattern")

var (
	baseDir string
	dryRun  bool
	strict  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Rewrite the configured page components in place",
	Long: `Reads every configured file, applies the migration rules in order and
writes the result back. Missing files are reported and skipped; any other
error stops the run. There is no backup, use --dry-run to preview.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("run called")

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if baseDir != "" {
			cfg.BaseDir = baseDir
		}

		runner := batch.NewRunner(cfg, cmd.OutOrStdout())
		runner.DryRun = dryRun
		runner.Reporter.Strict = strict

		summary, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}

		logger.Info("Migration summary: %s", summary)

		if strict && !summary.Clean() {
			logger.Error("Strict mode: %s", summary)
			return errStrict
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&baseDir, "base-dir", "", "Directory containing the page components (overrides config)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print a diff instead of writing files")
	runCmd.Flags().BoolVar(&strict, "strict", false, "Fail when a file is missing or no rule matched it")
}
