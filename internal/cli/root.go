package cli

import (
	"context"
	"io"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/service"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need. OpenService connects the configured
// store lazily so that offline commands (validate, sections) never touch it.
type App struct {
	OpenService func(ctx context.Context, seedFile string) (*service.BusinessPlanService, func(), error)
	Out         io.Writer
}

// NewRootCmd creates the top-level "bizplanctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "bizplanctl",
		Short:         "Operate the business plan document store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSeedCmd(app),
		newValidateCmd(app),
		newShowCmd(app),
		newSectionsCmd(app),
	)

	return root
}
