// Package main provides the entry point for the aiready CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for aiready.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aiready",
		Short: "Score web pages for AI search readiness",
		Long: `aiready scores web pages for AI search readiness.

It classifies each page, extracts a typed content model from its HTML,
and combines externally audited pillar results into a 0-100 score with
prioritized, page-aware recommendations.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewWeightsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
