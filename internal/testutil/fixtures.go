package testutil

import (
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.TherapeuticSession)

func WithIssue(issue string) SessionOption {
	return func(s *domain.TherapeuticSession) {
		s.Issue = issue
	}
}

func WithEmotions(emotions ...domain.EmotionCategory) SessionOption {
	return func(s *domain.TherapeuticSession) {
		s.EmotionalState = emotions
	}
}

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.TherapeuticSession) {
		s.StartedAt = t
	}
}

func WithApplied(techniqueIDs ...string) SessionOption {
	return func(s *domain.TherapeuticSession) {
		s.AppliedTechniques = techniqueIDs
	}
}

func WithFeedback(fb ...domain.TechniqueFeedback) SessionOption {
	return func(s *domain.TherapeuticSession) {
		s.Feedback = fb
	}
}

func NewTestSession(userID string, opts ...SessionOption) *domain.TherapeuticSession {
	now := time.Now().UTC()
	s := &domain.TherapeuticSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Issue:          "work stress",
		EmotionalState: []domain.EmotionCategory{domain.EmotionStress},
		StartedAt:      now,
		CreatedAt:      now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Feedback options
type FeedbackOption func(*domain.TechniqueFeedback)

func WithNotes(notes string) FeedbackOption {
	return func(fb *domain.TechniqueFeedback) {
		fb.Notes = notes
	}
}

func NewTestFeedback(techniqueID string, rating int, opts ...FeedbackOption) domain.TechniqueFeedback {
	fb := domain.TechniqueFeedback{
		TechniqueID: techniqueID,
		Rating:      rating,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&fb)
	}
	return fb
}

// SafetyPlan options
type PlanOption func(*domain.SafetyPlan)

func WithSupportContact(name, relationship, phone string) PlanOption {
	return func(p *domain.SafetyPlan) {
		p.SupportContacts = append(p.SupportContacts, domain.SupportContact{
			Name:         name,
			Relationship: relationship,
			Phone:        phone,
			Available:    "evenings",
		})
	}
}

func WithProfessionalContacts(contacts ...domain.ProfessionalResource) PlanOption {
	return func(p *domain.SafetyPlan) {
		p.ProfessionalContacts = contacts
	}
}

func NewTestSafetyPlan(userID string, opts ...PlanOption) *domain.SafetyPlan {
	now := time.Now().UTC()
	p := &domain.SafetyPlan{
		UserID:           userID,
		WarningSignals:   []string{"withdrawing from friends", "sleeping badly"},
		CopingStrategies: []string{"walk outside", "call a friend"},
		ReasonsForLiving: []string{"my dog"},
		CreatedAt:        now,
		LastUpdated:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
