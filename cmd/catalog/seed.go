package main

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-catalog/seed"
	"github.com/spf13/cobra"
)

var (
	seedCheck bool
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Add the books and patrons of a seed file",
	Long: `Validate a YAML seed file and add its books and patrons to the catalog.
With --check the file is only validated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if seedCheck {
			loader := seed.NewLoader()
			if err := loader.Load(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d book(s), %d patron(s)\n",
				path, len(loader.Books()), len(loader.Patrons()))
			return nil
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.close(context.Background())
		return a.seed(ctx, path)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedCheck, "check", false, "Only validate the seed file")
	rootCmd.AddCommand(seedCmd)
}
