package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/contract"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var userID, difficulty string
	var emotions, approaches []string
	var intensity, minutes int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend therapeutic techniques for the current emotional state",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Triage.Recommend(context.Background(), contract.RecommendRequest{
				UserID:              userID,
				Emotions:            emotions,
				Intensity:           intensity,
				TimeAvailableMin:    minutes,
				PreferredApproaches: approaches,
				Difficulty:          difficulty,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Recommendations", formatter.FormatTechniques(resp.Techniques)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose session history personalizes the ranking")
	cmd.Flags().StringSliceVar(&emotions, "emotions", nil, "Emotion categories (e.g. anxiety,stress)")
	cmd.Flags().IntVar(&intensity, "intensity", 5, "Self-reported emotional intensity (0-10)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Time available for an exercise")
	cmd.Flags().StringSliceVar(&approaches, "approach", nil, "Preferred therapeutic approaches (e.g. CBT,mindfulness)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Maximum difficulty (beginner, intermediate, advanced)")
	_ = cmd.MarkFlagRequired("emotions")

	return cmd
}
