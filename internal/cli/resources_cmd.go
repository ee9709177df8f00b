package cli

import (
	"fmt"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newResourcesCmd(app *App) *cobra.Command {
	var emergency bool

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List professional support resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			resources := app.Catalog.Resources()
			title := "Resources"
			if emergency {
				resources = app.Catalog.EmergencyResources()
				title = "Emergency Resources"
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatResources(resources)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&emergency, "emergency", false, "Only 24/7 crisis hotlines and emergency services")

	return cmd
}
