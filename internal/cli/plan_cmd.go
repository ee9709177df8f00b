package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage per-user safety plans",
	}

	cmd.AddCommand(
		newPlanCreateCmd(app),
		newPlanShowCmd(app),
		newPlanUpdateCmd(app),
	)

	return cmd
}

// parseSupportContact parses "name:relationship:phone:available" with
// trailing parts optional.
func parseSupportContact(raw string) (domain.SupportContact, error) {
	parts := strings.SplitN(raw, ":", 4)
	if parts[0] == "" {
		return domain.SupportContact{}, fmt.Errorf("contact %q: name must not be empty", raw)
	}
	c := domain.SupportContact{Name: parts[0]}
	if len(parts) > 1 {
		c.Relationship = parts[1]
	}
	if len(parts) > 2 {
		c.Phone = parts[2]
	}
	if len(parts) > 3 {
		c.Available = parts[3]
	}
	return c, nil
}

func parseSupportContacts(raw []string) ([]domain.SupportContact, error) {
	out := make([]domain.SupportContact, 0, len(raw))
	for _, r := range raw {
		c, err := parseSupportContact(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func addPlanFieldFlags(cmd *cobra.Command, warnings, coping, reasons, safety, contacts *[]string) {
	cmd.Flags().StringSliceVar(warnings, "warning", nil, "Warning signal")
	cmd.Flags().StringSliceVar(coping, "coping", nil, "Coping strategy")
	cmd.Flags().StringSliceVar(reasons, "reason", nil, "Reason for living")
	cmd.Flags().StringSliceVar(safety, "safety", nil, "Environmental safety step")
	cmd.Flags().StringArrayVar(contacts, "contact", nil, "Support contact as name:relationship:phone:available")
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var userID string
	var warnings, coping, reasons, safety, contacts []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a safety plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseSupportContacts(contacts)
			if err != nil {
				return err
			}

			plan, err := app.Plans.CreatePlan(context.Background(), &domain.SafetyPlan{
				UserID:              userID,
				WarningSignals:      warnings,
				CopingStrategies:    coping,
				ReasonsForLiving:    reasons,
				EnvironmentalSafety: safety,
				SupportContacts:     parsed,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSafetyPlan(plan))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the plan belongs to")
	addPlanFieldFlags(cmd, &warnings, &coping, &reasons, &safety, &contacts)
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a user's safety plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GetPlan(context.Background(), userID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSafetyPlan(plan))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the plan belongs to")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newPlanUpdateCmd(app *App) *cobra.Command {
	var userID string
	var warnings, coping, reasons, safety, contacts []string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update parts of a safety plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the caller actually set are sent; unset fields keep
			// their stored values.
			patch := &domain.SafetyPlan{UserID: userID}
			if cmd.Flags().Changed("warning") {
				patch.WarningSignals = warnings
			}
			if cmd.Flags().Changed("coping") {
				patch.CopingStrategies = coping
			}
			if cmd.Flags().Changed("reason") {
				patch.ReasonsForLiving = reasons
			}
			if cmd.Flags().Changed("safety") {
				patch.EnvironmentalSafety = safety
			}
			if cmd.Flags().Changed("contact") {
				parsed, err := parseSupportContacts(contacts)
				if err != nil {
					return err
				}
				patch.SupportContacts = parsed
			}

			plan, err := app.Plans.UpdatePlan(context.Background(), patch)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSafetyPlan(plan))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User the plan belongs to")
	addPlanFieldFlags(cmd, &warnings, &coping, &reasons, &safety, &contacts)
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
