package domain

import "time"

// Message is one turn of conversation history passed to the classifier.
type Message struct {
	Role    string
	Content string
}

// RiskAssessment is the immutable output of one classification call.
type RiskAssessment struct {
	RiskLevel             RiskLevel
	CrisisTypes           []CrisisType
	Confidence            float64
	TriggerKeywords       []string
	RecommendedAction     InterventionUrgency
	ImmediateSteps        []string
	ProfessionalReferrals []ProfessionalResource
	Timeframe             string
}

// CrisisDocumentation is the audit stamp attached to a crisis response.
type CrisisDocumentation struct {
	Timestamp          time.Time
	TriggerMessage     string
	ResponseGiven      string
	EscalationRequired bool
}

// CrisisResponse wraps an assessment with the composed user-facing response.
// IsImmediate is a strict function of risk level, detected crisis types, and
// reported intensity; it is never set independently.
type CrisisResponse struct {
	IsImmediate       bool
	Assessment        RiskAssessment
	ImmediateResponse string
	FollowUpActions   []string
	Documentation     CrisisDocumentation
}
