package cli

import (
	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Triage   service.TriageService
	Sessions service.SessionService
	Plans    service.SafetyPlanService
	Catalog  *catalog.Catalog
}

// NewRootCmd creates the top-level "solace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "solace",
		Short: "Risk assessment and technique recommendation for emotional support",
	}

	root.AddCommand(
		newAssessCmd(app),
		newRecommendCmd(app),
		newTriageCmd(app),
		newSessionCmd(app),
		newPlanCmd(app),
		newResourcesCmd(app),
	)

	return root
}
