package formatter

import (
	"strings"

	"github.com/alexanderramin/solace/internal/domain"
)

// FormatResources renders the professional resource directory as a table.
func FormatResources(resources []domain.ProfessionalResource) string {
	if len(resources) == 0 {
		return Dim("No resources available.") + "\n"
	}

	headers := []string{"NAME", "TYPE", "PHONE", "AVAILABLE", "COST"}
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		phone := r.Phone
		if phone == "" {
			phone = Dim("--")
		} else {
			phone = StyleGreen.Render(phone)
		}
		rows = append(rows, []string{
			StyleFg.Render(r.Name),
			StylePurple.Render(string(r.Type)),
			phone,
			Dim(string(r.Availability)),
			Dim(string(r.Cost)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSafetyPlan renders a safety plan section by section.
func FormatSafetyPlan(plan *domain.SafetyPlan) string {
	var b strings.Builder

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(Header(title) + "\n")
		for _, item := range items {
			b.WriteString("  " + StyleYellow.Render("·") + " " + item + "\n")
		}
		b.WriteString("\n")
	}

	section("Warning signals", plan.WarningSignals)
	section("Coping strategies", plan.CopingStrategies)
	section("Reasons for living", plan.ReasonsForLiving)
	section("Making my space safer", plan.EnvironmentalSafety)

	if len(plan.SupportContacts) > 0 {
		b.WriteString(Header("People I can call") + "\n")
		for _, c := range plan.SupportContacts {
			b.WriteString("  " + Bold(c.Name))
			if c.Relationship != "" {
				b.WriteString(" " + Dim("("+c.Relationship+")"))
			}
			if c.Phone != "" {
				b.WriteString("  " + StyleGreen.Render(c.Phone))
			}
			if c.Available != "" {
				b.WriteString("  " + Dim(c.Available))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(plan.ProfessionalContacts) > 0 {
		b.WriteString(Header("Professional support") + "\n")
		for _, r := range plan.ProfessionalContacts {
			b.WriteString("  " + Bold(r.Name))
			if r.Phone != "" {
				b.WriteString("  " + StyleGreen.Render(r.Phone))
			}
			b.WriteString("  " + Dim(string(r.Availability)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(Dim("Last updated: " + HumanDate(plan.LastUpdated)))
	return RenderBox("Safety Plan", b.String())
}
