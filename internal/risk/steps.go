package risk

import "github.com/alexanderramin/solace/internal/domain"

// immediateSteps returns the level-specific checklist, extended with
// crisis-type-specific items when those categories were detected.
func immediateSteps(level domain.RiskLevel, crisisTypes []domain.CrisisType) []string {
	var steps []string

	switch level {
	case domain.RiskImminent:
		steps = append(steps,
			"Call emergency services (911) if in immediate danger",
			"Contact crisis hotline immediately (988)",
			"Remove means of self-harm from environment",
			"Stay with trusted person or in safe location",
			"Go to emergency room if suicidal thoughts persist",
		)
	case domain.RiskHigh:
		steps = append(steps,
			"Contact mental health crisis line within 24 hours",
			"Reach out to trusted friend or family member",
			"Schedule appointment with mental health professional",
			"Implement safety planning strategies",
			"Avoid alcohol and drugs",
		)
	case domain.RiskModerate:
		steps = append(steps,
			"Consider scheduling therapy appointment",
			"Practice immediate coping strategies",
			"Connect with support system",
			"Monitor symptoms and mood changes",
		)
	default:
		steps = append(steps,
			"Continue current coping strategies",
			"Maintain healthy routines",
			"Consider preventive mental health support",
		)
	}

	if containsCrisisType(crisisTypes, domain.CrisisSubstanceAbuse) {
		steps = append(steps,
			"Contact SAMHSA helpline for substance abuse support",
			"Consider inpatient or outpatient treatment options",
		)
	}
	if containsCrisisType(crisisTypes, domain.CrisisDomesticViolence) {
		steps = append(steps,
			"Contact National Domestic Violence Hotline",
			"Develop safety plan for leaving dangerous situation",
		)
	}

	return steps
}

// followUpActions returns the host-facing follow-up list for an assessment.
func followUpActions(level domain.RiskLevel) []string {
	if level == domain.RiskImminent || level == domain.RiskHigh {
		return []string{
			"Document crisis intervention in user record",
			"Follow up within 24-48 hours",
			"Assess need for ongoing crisis monitoring",
			"Coordinate with professional mental health services",
		}
	}
	return []string{
		"Monitor for escalation in future sessions",
		"Provide ongoing emotional support and resources",
		"Encourage professional mental health evaluation",
	}
}
