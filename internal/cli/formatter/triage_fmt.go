package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/solace/internal/contract"
	"github.com/alexanderramin/solace/internal/domain"
)

// FormatAssessment renders a risk assessment payload as a styled block.
func FormatAssessment(a contract.AssessmentPayload) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n",
		RiskBadge(domain.RiskLevel(a.RiskLevel)),
		Dim(fmt.Sprintf("confidence %s · %s", Percent(a.Confidence), a.Timeframe)),
	))

	if len(a.CrisisTypes) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Concerns:"), StylePurple.Render(strings.Join(a.CrisisTypes, ", "))))
	}
	if len(a.TriggerKeywords) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Matched:"), strings.Join(a.TriggerKeywords, ", ")))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Action:"), StyleFg.Render(a.RecommendedAction)))

	if len(a.ImmediateSteps) > 0 {
		b.WriteString("\n" + Header("Immediate steps") + "\n")
		for i, step := range a.ImmediateSteps {
			b.WriteString(fmt.Sprintf("%s %s\n", Bold(fmt.Sprintf("%d.", i+1)), step))
		}
	}

	if len(a.Referrals) > 0 {
		b.WriteString("\n" + Header("Where to reach out") + "\n")
		for _, r := range a.Referrals {
			b.WriteString(formatReferralLine(r))
		}
	}

	return b.String()
}

func formatReferralLine(r contract.ResourcePayload) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", StyleBlue.Render("▸"), Bold(r.Name)))
	if r.Phone != "" {
		b.WriteString("  " + StyleGreen.Render(r.Phone))
	}
	if r.Availability != "" {
		b.WriteString("  " + Dim(r.Availability))
	}
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString("  " + Dim(r.Description) + "\n")
	}
	return b.String()
}

// FormatTechniques renders recommended techniques as a numbered list.
func FormatTechniques(techniques []contract.TechniquePayload) string {
	if len(techniques) == 0 {
		return Dim("No techniques match the current filters.") + "\n"
	}

	var b strings.Builder
	for i, t := range techniques {
		title := fmt.Sprintf("%s %s  %s  %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(t.Name),
			StylePurple.Render(t.Approach),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(t.TimeRequiredMin))),
			StyleGreen.Render(Percent(t.EffectivenessScore)),
		)
		b.WriteString(title + "\n")
		b.WriteString("   " + Dim(t.Description) + "\n")
		for _, line := range t.Instructions {
			b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("·"), line))
		}
		if i < len(techniques)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatAssessResponse renders a full assess command result.
func FormatAssessResponse(resp *contract.AssessResponse) string {
	var b strings.Builder
	b.WriteString(FormatAssessment(resp.Assessment))
	b.WriteString("\n" + resp.ResponseText + "\n")
	b.WriteString(formatFollowUps(resp.FollowUpActions))
	return RenderBox("Risk Assessment", b.String())
}

// FormatTriageResponse renders a full triage command result: assessment,
// supportive text, and (outside a crisis) technique recommendations.
func FormatTriageResponse(resp *contract.TriageResponse) string {
	var b strings.Builder
	b.WriteString(FormatAssessment(resp.Assessment))
	b.WriteString("\n" + resp.ResponseText + "\n")

	if len(resp.Techniques) > 0 {
		b.WriteString("\n" + Header("Try one of these") + "\n")
		b.WriteString(FormatTechniques(resp.Techniques))
	}
	b.WriteString(formatFollowUps(resp.FollowUpActions))

	title := "Check-In"
	if resp.IsImmediate {
		title = "Crisis Support"
	}
	return RenderBox(title, b.String())
}

func formatFollowUps(actions []string) string {
	if len(actions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + Header("Follow up") + "\n")
	for _, a := range actions {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("→"), a))
	}
	return b.String()
}
