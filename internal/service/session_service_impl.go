package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	catalog  *catalog.Catalog
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	cat *catalog.Catalog,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		catalog:  cat,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) StartSession(ctx context.Context, userID, issue string, emotions []domain.EmotionCategory) (session *domain.TherapeuticSession, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "start-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if strings.TrimSpace(userID) == "" {
		return nil, &domain.ValidationError{Field: "user_id", Message: "must not be empty"}
	}
	if len(emotions) == 0 {
		return nil, &domain.ValidationError{Field: "emotional_state", Message: "must name at least one emotion"}
	}
	for _, e := range emotions {
		if !domain.ValidEmotionCategories[string(e)] {
			return nil, &domain.ValidationError{Field: "emotional_state", Message: "unknown emotion category " + string(e)}
		}
	}

	now := time.Now().UTC()
	session = &domain.TherapeuticSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Issue:          issue,
		EmotionalState: emotions,
		StartedAt:      now,
		CreatedAt:      now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) RecordTechniqueApplied(ctx context.Context, userID, sessionID, techniqueID string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"technique_id": techniqueID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-technique",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if _, ok := s.catalog.TechniqueByID(techniqueID); !ok {
		return &domain.ValidationError{Field: "technique_id", Message: "unknown technique " + techniqueID}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).AppendTechnique(ctx, userID, sessionID, techniqueID, time.Now().UTC())
	})
}

func (s *sessionService) RecordFeedback(ctx context.Context, userID, sessionID, techniqueID string, rating int, notes string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"technique_id": techniqueID, "rating": rating}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-feedback",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if _, ok := s.catalog.TechniqueByID(techniqueID); !ok {
		return &domain.ValidationError{Field: "technique_id", Message: "unknown technique " + techniqueID}
	}
	if err := domain.ValidateRating(rating); err != nil {
		return err
	}

	fb := domain.TechniqueFeedback{
		TechniqueID: techniqueID,
		Rating:      rating,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).AppendFeedback(ctx, userID, sessionID, fb)
	})
}

func (s *sessionService) GetSession(ctx context.Context, userID, sessionID string) (*domain.TherapeuticSession, error) {
	return s.sessions.GetByID(ctx, userID, sessionID)
}

func (s *sessionService) History(ctx context.Context, userID string) ([]*domain.TherapeuticSession, error) {
	return s.sessions.ListByUser(ctx, userID)
}
