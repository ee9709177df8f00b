package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
)

// defaultProfessionalContacts caps how many directory entries seed a new
// plan when the user lists none of their own.
const defaultProfessionalContacts = 3

type safetyPlanService struct {
	plans     repository.SafetyPlanRepo
	directory []domain.ProfessionalResource
	observer  UseCaseObserver
}

func NewSafetyPlanService(
	plans repository.SafetyPlanRepo,
	directory []domain.ProfessionalResource,
	observers ...UseCaseObserver,
) SafetyPlanService {
	return &safetyPlanService{
		plans:     plans,
		directory: directory,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *safetyPlanService) CreatePlan(ctx context.Context, plan *domain.SafetyPlan) (created *domain.SafetyPlan, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-safety-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if strings.TrimSpace(plan.UserID) == "" {
		return nil, &domain.ValidationError{Field: "user_id", Message: "must not be empty"}
	}

	if len(plan.ProfessionalContacts) == 0 {
		n := defaultProfessionalContacts
		if n > len(s.directory) {
			n = len(s.directory)
		}
		plan.ProfessionalContacts = append([]domain.ProfessionalResource(nil), s.directory[:n]...)
	}

	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.LastUpdated = now

	if err = s.plans.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *safetyPlanService) GetPlan(ctx context.Context, userID string) (*domain.SafetyPlan, error) {
	return s.plans.Get(ctx, userID)
}

// UpdatePlan replaces only the fields the caller provided; nil slices leave
// the stored value untouched. The plan must already exist.
func (s *safetyPlanService) UpdatePlan(ctx context.Context, plan *domain.SafetyPlan) (updated *domain.SafetyPlan, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-safety-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	existing, err := s.plans.Get(ctx, plan.UserID)
	if err != nil {
		return nil, err
	}

	if plan.WarningSignals != nil {
		existing.WarningSignals = plan.WarningSignals
	}
	if plan.CopingStrategies != nil {
		existing.CopingStrategies = plan.CopingStrategies
	}
	if plan.SupportContacts != nil {
		existing.SupportContacts = plan.SupportContacts
	}
	if plan.ProfessionalContacts != nil {
		existing.ProfessionalContacts = plan.ProfessionalContacts
	}
	if plan.EnvironmentalSafety != nil {
		existing.EnvironmentalSafety = plan.EnvironmentalSafety
	}
	if plan.ReasonsForLiving != nil {
		existing.ReasonsForLiving = plan.ReasonsForLiving
	}
	existing.LastUpdated = time.Now().UTC()

	if err = s.plans.Upsert(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
