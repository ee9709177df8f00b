package risk

import (
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
)

// Classifier scores free text against the risk lexicon. It holds no mutable
// state; Assess is a pure function of its inputs and the static registries,
// so repeated calls with the same inputs yield identical assessments.
type Classifier struct {
	indicators []domain.CrisisIndicator
	resources  []domain.ProfessionalResource
	th         Thresholds
}

// NewClassifier builds a classifier over the given lexicon and directory.
func NewClassifier(indicators []domain.CrisisIndicator, resources []domain.ProfessionalResource, th Thresholds) *Classifier {
	return &Classifier{indicators: indicators, resources: resources, th: th}
}

// Assess classifies one message. intensity is the user's self-reported
// emotional intensity on the 0-10 scale. history is accepted for interface
// stability; classification depends only on message and intensity.
//
// Assess never fails on message content, however distressing; only
// structurally malformed input (out-of-range intensity, empty message) is
// rejected, and callers must treat that as fatal rather than downgrade risk.
func (c *Classifier) Assess(message string, intensity int, history []domain.Message) (*domain.RiskAssessment, error) {
	if err := domain.ValidateIntensity(intensity); err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		return nil, &domain.ValidationError{Field: "message", Message: "must not be empty"}
	}

	lower := strings.ToLower(message)

	var totalScore, maxSingle float64
	var crisisTypes []domain.CrisisType
	var triggerKeywords []string
	seen := map[domain.CrisisType]bool{}

	for _, ind := range c.indicators {
		if !strings.Contains(lower, ind.Keyword) {
			continue
		}

		score := ind.Weight
		if len(ind.Context) > 0 {
			matches := 0
			for _, ctx := range ind.Context {
				if strings.Contains(lower, ctx) {
					matches++
				}
			}
			// Context amplifies; absent context never zeroes the match.
			if matches > 0 {
				score *= 1 + float64(matches)*c.th.ContextStep
			}
		}

		totalScore += score
		if score > maxSingle {
			maxSingle = score
		}
		if !seen[ind.Category] {
			seen[ind.Category] = true
			crisisTypes = append(crisisTypes, ind.Category)
		}
		triggerKeywords = append(triggerKeywords, ind.Keyword)
	}

	switch {
	case intensity >= c.th.HighIntensity:
		totalScore *= c.th.HighMultiplier
	case intensity >= c.th.ElevatedIntensity:
		totalScore *= c.th.ElevatedMultiplier
	}

	var level domain.RiskLevel
	var action domain.InterventionUrgency
	switch {
	case totalScore >= c.th.ImminentScore || maxSingle >= c.th.ImminentScore:
		level = domain.RiskImminent
		action = domain.UrgencyImmediate
	case totalScore >= c.th.HighTotal || maxSingle >= c.th.HighSingle:
		level = domain.RiskHigh
		action = domain.UrgencyUrgent
	case totalScore >= c.th.ModerateTotal || intensity >= c.th.ModerateIntens:
		level = domain.RiskModerate
		action = domain.UrgencyRoutine
	default:
		level = domain.RiskLow
		action = domain.UrgencyMonitoring
	}

	confidence := totalScore + float64(len(triggerKeywords))*c.th.ConfidenceStep
	if confidence > 1 {
		confidence = 1
	}

	return &domain.RiskAssessment{
		RiskLevel:             level,
		CrisisTypes:           crisisTypes,
		Confidence:            confidence,
		TriggerKeywords:       triggerKeywords,
		RecommendedAction:     action,
		ImmediateSteps:        immediateSteps(level, crisisTypes),
		ProfessionalReferrals: c.selectReferrals(crisisTypes, level),
		Timeframe:             timeframe(level),
	}, nil
}

// AssessCrisis wraps Assess with the composed crisis response. IsImmediate
// is a strict function of risk level, detected crisis types, and intensity.
func (c *Classifier) AssessCrisis(message string, intensity int, history []domain.Message) (*domain.CrisisResponse, error) {
	assessment, err := c.Assess(message, intensity, history)
	if err != nil {
		return nil, err
	}

	isImmediate := assessment.RiskLevel == domain.RiskImminent ||
		containsCrisisType(assessment.CrisisTypes, domain.CrisisSuicide) ||
		(assessment.RiskLevel == domain.RiskHigh && intensity >= c.th.HighIntensity)

	response := composeResponse(assessment, isImmediate)

	return &domain.CrisisResponse{
		IsImmediate:       isImmediate,
		Assessment:        *assessment,
		ImmediateResponse: response,
		FollowUpActions:   followUpActions(assessment.RiskLevel),
		Documentation: domain.CrisisDocumentation{
			Timestamp:          time.Now().UTC(),
			TriggerMessage:     message,
			ResponseGiven:      response,
			EscalationRequired: isImmediate,
		},
	}, nil
}

// ContainsCrisisIndicators reports whether any lexicon keyword appears in
// the message. Cheap pre-screen for callers that gate a full assessment.
func (c *Classifier) ContainsCrisisIndicators(message string) bool {
	lower := strings.ToLower(message)
	for _, ind := range c.indicators {
		if strings.Contains(lower, ind.Keyword) {
			return true
		}
	}
	return false
}

// EmergencyResources returns the always-available crisis entries from the
// directory, for hosts that must surface hotlines on any internal failure.
func (c *Classifier) EmergencyResources() []domain.ProfessionalResource {
	var out []domain.ProfessionalResource
	for _, r := range c.resources {
		if r.Availability == domain.AvailAlways &&
			(r.Type == domain.ResourceCrisisHotline || r.Type == domain.ResourceEmergency) {
			out = append(out, r)
		}
	}
	return out
}

func timeframe(level domain.RiskLevel) string {
	switch level {
	case domain.RiskImminent:
		return "Immediate (within minutes)"
	case domain.RiskHigh:
		return "Urgent (within 24 hours)"
	case domain.RiskModerate:
		return "Soon (within 1 week)"
	default:
		return "Routine (within 1 month)"
	}
}

func containsCrisisType(types []domain.CrisisType, t domain.CrisisType) bool {
	for _, ct := range types {
		if ct == t {
			return true
		}
	}
	return false
}
