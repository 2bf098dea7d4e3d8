// Package cli wires the punch-clock ledger into a command-line surface.
// Commands stay thin: validation up front, one core call, styled output.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ponto",
	Short: "A personal work-hours ledger with balance tracking",
}

func init() {
	rootCmd.AddCommand(punchCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(vacationCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
