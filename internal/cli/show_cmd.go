package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <section>",
		Short: "Print one section of the stored business plan as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), app, args[0])
		},
	}
}

func runShow(ctx context.Context, app *App, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	section, err := domain.ParseSection(name)
	if err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}

	svc, closeFn, err := app.OpenService(ctx, "")
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeFn()

	out, err := svc.Section(ctx, section)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", section, err)
	}

	enc := json.NewEncoder(app.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func newSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections that can be shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range domain.Sections() {
				fmt.Fprintf(app.Out, "%-16s %s\n", s.Name, s.Title)
			}
			return nil
		},
	}
}
