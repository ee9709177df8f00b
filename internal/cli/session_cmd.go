package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/contract"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the session ledger",
	}

	cmd.AddCommand(
		newSessionStartCmd(app),
		newSessionTechniqueCmd(app),
		newSessionFeedbackCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionStartCmd(app *App) *cobra.Command {
	var userID, issue string
	var emotions []string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := contract.ParseEmotions(emotions)
			if err != nil {
				return err
			}

			sess, err := app.Sessions.StartSession(context.Background(), userID, issue, parsed)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Started session %s for %s\n", sess.ID, userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the session belongs to")
	cmd.Flags().StringVar(&issue, "issue", "", "What the user wants to work on")
	cmd.Flags().StringSliceVar(&emotions, "emotions", nil, "Emotion categories (e.g. anxiety,stress)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("emotions")

	return cmd
}

func newSessionTechniqueCmd(app *App) *cobra.Command {
	var userID, sessionID, techniqueID string

	cmd := &cobra.Command{
		Use:   "technique",
		Short: "Record a technique applied during a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Sessions.RecordTechniqueApplied(context.Background(), userID, sessionID, techniqueID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for session %s\n", techniqueID, sessionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the session belongs to")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID")
	cmd.Flags().StringVar(&techniqueID, "technique", "", "Technique ID from the catalog")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("technique")

	return cmd
}

func newSessionFeedbackCmd(app *App) *cobra.Command {
	var userID, sessionID, techniqueID, notes string
	var rating int

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record how well a technique worked",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Sessions.RecordFeedback(context.Background(), userID, sessionID, techniqueID, rating, notes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded feedback (%d/10) for %s\n", rating, techniqueID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the session belongs to")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID")
	cmd.Flags().StringVar(&techniqueID, "technique", "", "Technique ID from the catalog")
	cmd.Flags().IntVar(&rating, "rating", 0, "Effectiveness rating (0-10)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("technique")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.History(context.Background(), userID)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			headers := []string{"ID", "STARTED", "ISSUE", "EMOTIONS", "TECHNIQUES", "FEEDBACK"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				emotions := make([]string, len(s.EmotionalState))
				for i, e := range s.EmotionalState {
					emotions[i] = string(e)
				}
				issue := s.Issue
				if issue == "" {
					issue = formatter.Dim("--")
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.HumanTimestamp(s.StartedAt),
					issue,
					formatter.Dim(strings.Join(emotions, ", ")),
					fmt.Sprintf("%d", len(s.AppliedTechniques)),
					fmt.Sprintf("%d", len(s.Feedback)),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose sessions to list")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
