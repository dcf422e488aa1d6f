package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd runs the interactive shell when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "A small library catalog: books, patrons, loans and fees",
	Long: `catalog keeps books, patrons and a transaction log of check outs
and check ins. It runs as an interactive menu (default), as an HTTP API
(serve) or loads a seed file (seed).`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
