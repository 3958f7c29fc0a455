package cli

import (
	"fmt"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/seed"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a payload against the document schema and report suspicious values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(app, path)
		},
	}
}

func runValidate(app *App, path string) error {
	payload, err := seed.Load(path)
	if err != nil {
		return err
	}

	plan, err := domain.Decode(payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "valid: %s (%d locations, %d signature bowls)\n",
		plan.Company.Name, len(plan.Locations), len(plan.Menu.SignatureBowls))

	// Rule violations are advisory: the plan above would still be seeded.
	for _, v := range domain.CheckRules(plan) {
		fmt.Fprintf(app.Out, "warning: %s\n", v)
	}
	return nil
}
