package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/contract"
	"github.com/spf13/cobra"
)

func newTriageCmd(app *App) *cobra.Command {
	var userID, message string
	var emotions []string
	var intensity, minutes int

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Assess a message and recommend techniques in one pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Triage.Triage(context.Background(), contract.TriageRequest{
				UserID:           userID,
				Message:          message,
				Intensity:        intensity,
				Emotions:         emotions,
				TimeAvailableMin: minutes,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTriageResponse(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose session history personalizes the ranking")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text to triage")
	cmd.Flags().IntVar(&intensity, "intensity", 5, "Self-reported emotional intensity (0-10)")
	cmd.Flags().StringSliceVar(&emotions, "emotions", nil, "Emotion categories (e.g. anxiety,stress)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Time available for an exercise")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
