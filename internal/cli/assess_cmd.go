package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/contract"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	var message string
	var intensity int

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a message for crisis indicators",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Triage.Assess(context.Background(), contract.AssessRequest{
				Message:   message,
				Intensity: intensity,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssessResponse(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text to assess")
	cmd.Flags().IntVar(&intensity, "intensity", 5, "Self-reported emotional intensity (0-10)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
