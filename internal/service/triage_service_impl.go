package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/contract"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/protocol"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/risk"
)

// defaultTimeAvailableMin is assumed when a request does not say how much
// time the user has.
const defaultTimeAvailableMin = 30

// noTechniqueMessage closes a triage response when nothing in the catalog
// fits the user's state and time budget.
const noTechniqueMessage = "I don't have a specific exercise that fits the time you have right now. " +
	"Talking through what you're feeling already helps; we can simply continue the conversation."

type triageService struct {
	classifier *risk.Classifier
	selector   *protocol.Selector
	catalog    *catalog.Catalog
	sessions   repository.SessionRepo
	observer   UseCaseObserver
}

func NewTriageService(
	classifier *risk.Classifier,
	selector *protocol.Selector,
	cat *catalog.Catalog,
	sessions repository.SessionRepo,
	observers ...UseCaseObserver,
) TriageService {
	return &triageService{
		classifier: classifier,
		selector:   selector,
		catalog:    cat,
		sessions:   sessions,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *triageService) Assess(ctx context.Context, req contract.AssessRequest) (resp *contract.AssessResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"intensity": req.Intensity}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "assess",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	crisis, err := s.classifier.AssessCrisis(req.Message, req.Intensity, contract.ToMessages(req.History))
	if err != nil {
		return nil, asTriageError(err)
	}
	fields["risk_level"] = string(crisis.Assessment.RiskLevel)
	fields["is_immediate"] = crisis.IsImmediate

	return &contract.AssessResponse{
		Assessment:      contract.FromAssessment(&crisis.Assessment),
		IsImmediate:     crisis.IsImmediate,
		ResponseText:    crisis.ImmediateResponse,
		FollowUpActions: crisis.FollowUpActions,
	}, nil
}

func (s *triageService) Recommend(ctx context.Context, req contract.RecommendRequest) (resp *contract.RecommendResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"intensity": req.Intensity}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	emotions, prefs, timeAvail, err := s.parseRecommendInputs(req)
	if err != nil {
		return nil, err
	}

	var history []*domain.TherapeuticSession
	if req.UserID != "" {
		history, err = s.sessions.ListByUser(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("loading session history: %w", err)
		}
	}

	var techniques []domain.TherapeuticTechnique
	if len(prefs.PreferredApproaches) == 0 && prefs.Difficulty == "" && len(history) > 0 {
		techniques = s.selector.PersonalizedSelect(history, s.catalog.TechniqueByID, emotions, req.Intensity, timeAvail)
	} else {
		recent := protocol.RecentTechniqueIDs(history, 5)
		techniques = s.selector.Select(emotions, req.Intensity, timeAvail, prefs, recent)
	}
	fields["technique_count"] = len(techniques)

	return &contract.RecommendResponse{Techniques: contract.FromTechniques(techniques)}, nil
}

func (s *triageService) Triage(ctx context.Context, req contract.TriageRequest) (resp *contract.TriageResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"intensity": req.Intensity}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "triage",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	crisis, err := s.classifier.AssessCrisis(req.Message, req.Intensity, contract.ToMessages(req.History))
	if err != nil {
		return nil, asTriageError(err)
	}
	fields["risk_level"] = string(crisis.Assessment.RiskLevel)
	fields["is_immediate"] = crisis.IsImmediate

	resp = &contract.TriageResponse{
		Assessment:      contract.FromAssessment(&crisis.Assessment),
		IsImmediate:     crisis.IsImmediate,
		ResponseText:    crisis.ImmediateResponse,
		FollowUpActions: crisis.FollowUpActions,
	}

	// During an immediate crisis the only output is the crisis response;
	// technique recommendations would be noise at best.
	if crisis.IsImmediate {
		return resp, nil
	}

	emotions, err := contract.ParseEmotions(req.Emotions)
	if err != nil {
		return nil, contract.NewInvalidInput("%v", err)
	}
	timeAvail := req.TimeAvailableMin
	if timeAvail <= 0 {
		timeAvail = defaultTimeAvailableMin
	}

	var techniques []domain.TherapeuticTechnique
	if req.UserID != "" {
		history, histErr := s.sessions.ListByUser(ctx, req.UserID)
		if histErr != nil {
			err = fmt.Errorf("loading session history: %w", histErr)
			return nil, err
		}
		techniques = s.selector.PersonalizedSelect(history, s.catalog.TechniqueByID, emotions, req.Intensity, timeAvail)
	} else {
		techniques = s.selector.Select(emotions, req.Intensity, timeAvail, protocol.Preferences{}, nil)
	}
	fields["technique_count"] = len(techniques)

	if len(techniques) == 0 {
		resp.ResponseText += "\n\n" + noTechniqueMessage
		return resp, nil
	}
	resp.Techniques = contract.FromTechniques(techniques)
	return resp, nil
}

func (s *triageService) parseRecommendInputs(req contract.RecommendRequest) ([]domain.EmotionCategory, protocol.Preferences, int, error) {
	emotions, err := contract.ParseEmotions(req.Emotions)
	if err != nil {
		return nil, protocol.Preferences{}, 0, contract.NewInvalidInput("%v", err)
	}
	if len(emotions) == 0 {
		return nil, protocol.Preferences{}, 0, contract.NewInvalidInput("emotions must name at least one category")
	}
	if err := domain.ValidateIntensity(req.Intensity); err != nil {
		return nil, protocol.Preferences{}, 0, contract.NewInvalidInput("%v", err)
	}

	var prefs protocol.Preferences
	for _, a := range req.PreferredApproaches {
		if !domain.ValidApproaches[a] {
			return nil, protocol.Preferences{}, 0, contract.NewInvalidInput("unknown approach %q", a)
		}
		prefs.PreferredApproaches = append(prefs.PreferredApproaches, domain.TherapeuticApproach(a))
	}
	if req.Difficulty != "" {
		if !domain.ValidDifficulties[req.Difficulty] {
			return nil, protocol.Preferences{}, 0, contract.NewInvalidInput("unknown difficulty %q", req.Difficulty)
		}
		prefs.Difficulty = domain.Difficulty(req.Difficulty)
	}

	timeAvail := req.TimeAvailableMin
	if timeAvail <= 0 {
		timeAvail = defaultTimeAvailableMin
	}
	return emotions, prefs, timeAvail, nil
}

// asTriageError converts validation failures into the contract error type;
// anything else passes through unchanged.
func asTriageError(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return contract.NewInvalidInput("%v", verr)
	}
	return err
}
