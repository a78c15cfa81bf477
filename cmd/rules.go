/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pagemigrate/core/rewrite"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the migration rules in the order they run",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, rule := range rewrite.Rules() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-24s %s\n", i+1, rule.Name, rule.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
