package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the business plan if the store is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), app, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (.yaml, .yml, .json); defaults to the built-in plan")
	return cmd
}

func runSeed(ctx context.Context, app *App, file string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeFn, err := app.OpenService(ctx, file)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeFn()

	res, err := svc.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	if res.InsertedID != "" {
		fmt.Fprintf(app.Out, "%s (id %s)\n", res.Message, res.InsertedID)
		return nil
	}
	fmt.Fprintln(app.Out, res.Message)
	return nil
}
