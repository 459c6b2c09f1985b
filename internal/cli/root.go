package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pawplan/internal/config"
	"github.com/alexanderramin/pawplan/internal/service"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Dogs   service.DogService
	Tastes service.TasteService
	Plans  service.PlanService

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pawplan" command. With no subcommand it
// opens the shell on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pawplan",
		Short:         "Home-cooked meal planner for dogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newDogCmd(app),
		newEnergyCmd(app),
		newRatioCmd(app),
		newPlanCmd(app),
		newTasteCmd(app),
		newIngredientsCmd(),
		newPresetsCmd(),
		newSupplementsCmd(),
		newBreedsCmd(),
		newShellCmd(app),
	)

	return root
}
