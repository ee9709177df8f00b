package service

import (
	"context"

	"github.com/alexanderramin/solace/internal/contract"
	"github.com/alexanderramin/solace/internal/domain"
)

// SessionService owns the append-only session ledger. Ledger entries are
// never updated or removed; techniques and feedback only accumulate.
type SessionService interface {
	StartSession(ctx context.Context, userID, issue string, emotions []domain.EmotionCategory) (*domain.TherapeuticSession, error)
	RecordTechniqueApplied(ctx context.Context, userID, sessionID, techniqueID string) error
	RecordFeedback(ctx context.Context, userID, sessionID, techniqueID string, rating int, notes string) error
	GetSession(ctx context.Context, userID, sessionID string) (*domain.TherapeuticSession, error)
	History(ctx context.Context, userID string) ([]*domain.TherapeuticSession, error)
}

// SafetyPlanService manages one safety plan per user.
type SafetyPlanService interface {
	CreatePlan(ctx context.Context, plan *domain.SafetyPlan) (*domain.SafetyPlan, error)
	GetPlan(ctx context.Context, userID string) (*domain.SafetyPlan, error)
	UpdatePlan(ctx context.Context, plan *domain.SafetyPlan) (*domain.SafetyPlan, error)
}

// TriageService is the host-facing pipeline: risk assessment first, technique
// recommendation only when the message is not an immediate crisis.
type TriageService interface {
	Assess(ctx context.Context, req contract.AssessRequest) (*contract.AssessResponse, error)
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
	Triage(ctx context.Context, req contract.TriageRequest) (*contract.TriageResponse, error)
}
