package main

import (
	"context"
	"os"

	"github.com/marcelsud/library-catalog/internal/console"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive menu",
	Long:  `Run the interactive menu. The catalog is loaded at start and saved on exit or end of input.`,
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	shell := console.NewShell(a.svc, os.Stdin, os.Stdout, a.logger)
	return shell.Run(ctx)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
