package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
)

// SessionRepo persists the append-only therapy session ledger. Sessions are
// scoped to a user: lookups and appends take the user id and report
// ErrNotFound for sessions that exist under a different user.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.TherapeuticSession) error
	GetByID(ctx context.Context, userID, sessionID string) (*domain.TherapeuticSession, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TherapeuticSession, error)
	AppendTechnique(ctx context.Context, userID, sessionID, techniqueID string, appliedAt time.Time) error
	AppendFeedback(ctx context.Context, userID, sessionID string, fb domain.TechniqueFeedback) error
}

// SafetyPlanRepo stores at most one safety plan per user.
type SafetyPlanRepo interface {
	Get(ctx context.Context, userID string) (*domain.SafetyPlan, error)
	Upsert(ctx context.Context, p *domain.SafetyPlan) error
}
