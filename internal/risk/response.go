package risk

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/solace/internal/domain"
)

// composeResponse fills the level-specific response template. This is pure
// text assembly over an already-computed assessment; the numeric
// classification never depends on it.
func composeResponse(a *domain.RiskAssessment, isImmediate bool) string {
	if isImmediate || a.RiskLevel == domain.RiskImminent {
		return immediateCrisisResponse(a)
	}
	switch a.RiskLevel {
	case domain.RiskHigh:
		return highRiskResponse(a)
	case domain.RiskModerate:
		return moderateRiskResponse()
	default:
		return lowRiskResponse()
	}
}

func immediateCrisisResponse(a *domain.RiskAssessment) string {
	var lines []string
	count := 0
	for _, r := range a.ProfessionalReferrals {
		if r.Availability != domain.AvailAlways {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", r.Name, r.Phone))
		count++
		if count == 3 {
			break
		}
	}
	resources := strings.Join(lines, "\n")

	return fmt.Sprintf(`I'm very concerned about what you're sharing. Your life has value and there are people who want to help you right now.

IMMEDIATE HELP AVAILABLE:
%s

If you're in immediate danger:
- Call 911 or go to your nearest emergency room
- Call the National Suicide Prevention Lifeline: 988
- Text HOME to 741741 for Crisis Text Line

Right now:
- You are not alone
- This pain is temporary, even though it doesn't feel that way
- Professional help is available 24/7
- Your life matters

Please reach out to one of these resources immediately. You don't have to go through this alone.`, resources)
}

func highRiskResponse(a *domain.RiskAssessment) string {
	primary := "National Suicide Prevention Lifeline: 988"
	if len(a.ProfessionalReferrals) > 0 {
		r := a.ProfessionalReferrals[0]
		primary = fmt.Sprintf("%s: %s", r.Name, r.Phone)
	}

	return fmt.Sprintf(`I'm really concerned about what you're experiencing. What you're going through sounds very difficult, and I want to make sure you get the support you need.

Important resources:
- %s
- Crisis Text Line: Text HOME to 741741

Please consider:
- Reaching out to a mental health professional today
- Talking to someone you trust about how you're feeling
- Creating a safety plan with specific coping strategies

Remember:
- These intense feelings can change with proper support
- You deserve care and compassion
- Professional help can make a real difference

Would you like help creating a safety plan or finding professional support in your area?`, primary)
}

func moderateRiskResponse() string {
	return `Thank you for sharing something so difficult with me. I can hear that you're struggling, and I want you to know that support is available.

Helpful resources:
- If you need immediate support: Call 988 (Suicide Prevention Lifeline)
- For ongoing support: Consider speaking with a mental health professional

Some things that might help:
- Practice grounding techniques when emotions feel overwhelming
- Reach out to trusted friends or family members
- Consider keeping a mood journal to track patterns
- Remember that seeking help is a sign of strength

Professional support options:
- Your primary care doctor can provide referrals
- Employee assistance programs (if available through work)
- Community mental health centers

How are you taking care of yourself right now? What support systems do you have available?`
}

func lowRiskResponse() string {
	return `I appreciate you sharing what's on your mind. It's important to acknowledge when we're struggling, and reaching out is a positive step.

General wellness resources:
- National Alliance on Mental Illness (NAMI): nami.org
- Psychology Today therapist directory: psychologytoday.com
- Crisis Text Line: Text HOME to 741741 (available anytime)

Self-care strategies:
- Regular sleep schedule and exercise
- Mindfulness or meditation practices
- Connecting with supportive people in your life
- Engaging in activities you usually enjoy

When to seek additional help:
- If symptoms worsen or persist
- If you're having thoughts of self-harm
- If you're unable to function in daily activities

What coping strategies have been helpful for you in the past?`
}
