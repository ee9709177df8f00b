package contract

import (
	"fmt"

	"github.com/alexanderramin/solace/internal/domain"
)

// MessagePayload is one prior turn of conversation supplied for context.
type MessagePayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResourcePayload is the host-facing shape of a professional resource.
type ResourcePayload struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	Availability string   `json:"availability"`
	Description  string   `json:"description,omitempty"`
	Cost         string   `json:"cost,omitempty"`
	Languages    []string `json:"languages,omitempty"`
}

// TechniquePayload is the host-facing shape of a recommended technique.
type TechniquePayload struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Approach           string   `json:"approach"`
	Kind               string   `json:"kind"`
	Description        string   `json:"description"`
	Instructions       []string `json:"instructions"`
	TimeRequiredMin    int      `json:"time_required_min"`
	Difficulty         string   `json:"difficulty"`
	EffectivenessScore float64  `json:"effectiveness_score"`
	Acronym            string   `json:"acronym,omitempty"`
	Steps              []string `json:"steps,omitempty"`
	GuidedScript       string   `json:"guided_script,omitempty"`
}

// AssessmentPayload is the host-facing shape of a risk assessment.
type AssessmentPayload struct {
	RiskLevel         string            `json:"risk_level"`
	CrisisTypes       []string          `json:"crisis_types,omitempty"`
	Confidence        float64           `json:"confidence"`
	TriggerKeywords   []string          `json:"trigger_keywords,omitempty"`
	RecommendedAction string            `json:"recommended_action"`
	ImmediateSteps    []string          `json:"immediate_steps,omitempty"`
	Referrals         []ResourcePayload `json:"referrals,omitempty"`
	Timeframe         string            `json:"timeframe"`
}

// FromAssessment maps a domain risk assessment to its payload.
func FromAssessment(a *domain.RiskAssessment) AssessmentPayload {
	types := make([]string, len(a.CrisisTypes))
	for i, ct := range a.CrisisTypes {
		types[i] = string(ct)
	}
	return AssessmentPayload{
		RiskLevel:         string(a.RiskLevel),
		CrisisTypes:       types,
		Confidence:        a.Confidence,
		TriggerKeywords:   a.TriggerKeywords,
		RecommendedAction: string(a.RecommendedAction),
		ImmediateSteps:    a.ImmediateSteps,
		Referrals:         FromResources(a.ProfessionalReferrals),
		Timeframe:         a.Timeframe,
	}
}

// FromResources maps domain resources to payloads.
func FromResources(resources []domain.ProfessionalResource) []ResourcePayload {
	out := make([]ResourcePayload, len(resources))
	for i, r := range resources {
		out[i] = ResourcePayload{
			Type:         string(r.Type),
			Name:         r.Name,
			Phone:        r.Phone,
			Website:      r.Website,
			Availability: string(r.Availability),
			Description:  r.Description,
			Cost:         string(r.Cost),
			Languages:    r.Languages,
		}
	}
	return out
}

// FromTechniques maps domain techniques to payloads.
func FromTechniques(techniques []domain.TherapeuticTechnique) []TechniquePayload {
	out := make([]TechniquePayload, len(techniques))
	for i, t := range techniques {
		out[i] = TechniquePayload{
			ID:                 t.ID,
			Name:               t.Name,
			Approach:           string(t.Approach),
			Kind:               string(t.Kind),
			Description:        t.Description,
			Instructions:       t.Instructions,
			TimeRequiredMin:    t.TimeRequiredMin,
			Difficulty:         string(t.Difficulty),
			EffectivenessScore: t.EffectivenessScore,
			Acronym:            t.Acronym,
			Steps:              t.Steps,
			GuidedScript:       t.GuidedScript,
		}
	}
	return out
}

// ParseEmotions validates and converts raw emotion strings.
func ParseEmotions(raw []string) ([]domain.EmotionCategory, error) {
	out := make([]domain.EmotionCategory, 0, len(raw))
	for _, s := range raw {
		e, err := domain.ParseEmotionCategory(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ToMessages converts message payloads to domain messages.
func ToMessages(payloads []MessagePayload) []domain.Message {
	out := make([]domain.Message, len(payloads))
	for i, m := range payloads {
		out[i] = domain.Message{Role: m.Role, Content: m.Content}
	}
	return out
}

// TriageErrorCode classifies triage pipeline failures for host callers.
type TriageErrorCode string

const (
	ErrInvalidInput   TriageErrorCode = "INVALID_INPUT"
	ErrUnknownSession TriageErrorCode = "UNKNOWN_SESSION"
	ErrInternalError  TriageErrorCode = "INTERNAL_ERROR"
)

// TriageError is a typed error carried across the contract boundary.
type TriageError struct {
	Code    TriageErrorCode
	Message string
}

func (e *TriageError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewInvalidInput builds an INVALID_INPUT triage error.
func NewInvalidInput(format string, args ...any) *TriageError {
	return &TriageError{Code: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}
