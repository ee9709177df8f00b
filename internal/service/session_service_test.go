package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession_PersistsLedgerEntry(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "u1", "exam panic", []domain.EmotionCategory{domain.EmotionAnxiety})
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	fetched, err := svc.GetSession(ctx, "u1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "exam panic", fetched.Issue)
	assert.Equal(t, []domain.EmotionCategory{domain.EmotionAnxiety}, fetched.EmotionalState)
}

func TestStartSession_RejectsInvalidInput(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	var verr *domain.ValidationError

	_, err := svc.StartSession(ctx, "", "issue", []domain.EmotionCategory{domain.EmotionAnxiety})
	assert.ErrorAs(t, err, &verr)

	_, err = svc.StartSession(ctx, "u1", "issue", nil)
	assert.ErrorAs(t, err, &verr)

	_, err = svc.StartSession(ctx, "u1", "issue", []domain.EmotionCategory{"boredom"})
	assert.ErrorAs(t, err, &verr)
}

func TestRecordTechniqueApplied_AppendsInOrder(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "u1", "", []domain.EmotionCategory{domain.EmotionStress})
	require.NoError(t, err)

	require.NoError(t, svc.RecordTechniqueApplied(ctx, "u1", sess.ID, "mindfulness-grounding-5-4-3-2-1"))
	require.NoError(t, svc.RecordTechniqueApplied(ctx, "u1", sess.ID, "dbt-tipp"))

	fetched, err := svc.GetSession(ctx, "u1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"mindfulness-grounding-5-4-3-2-1", "dbt-tipp"}, fetched.AppliedTechniques)
}

func TestRecordTechniqueApplied_UnknownTechnique(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "u1", "", []domain.EmotionCategory{domain.EmotionStress})
	require.NoError(t, err)

	var verr *domain.ValidationError
	err = svc.RecordTechniqueApplied(ctx, "u1", sess.ID, "not-a-technique")
	assert.ErrorAs(t, err, &verr)
}

func TestRecordTechniqueApplied_UnknownSession(t *testing.T) {
	svc, _ := newSessionService(t)

	err := svc.RecordTechniqueApplied(context.Background(), "u1", "nonexistent", "dbt-tipp")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordFeedback_Validates(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "u1", "", []domain.EmotionCategory{domain.EmotionStress})
	require.NoError(t, err)

	var verr *domain.ValidationError

	err = svc.RecordFeedback(ctx, "u1", sess.ID, "dbt-tipp", 11, "")
	assert.ErrorAs(t, err, &verr)

	err = svc.RecordFeedback(ctx, "u1", sess.ID, "dbt-tipp", -1, "")
	assert.ErrorAs(t, err, &verr)

	err = svc.RecordFeedback(ctx, "u1", sess.ID, "not-a-technique", 5, "")
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, svc.RecordFeedback(ctx, "u1", sess.ID, "dbt-tipp", 0, "did not help"))
	require.NoError(t, svc.RecordFeedback(ctx, "u1", sess.ID, "dbt-tipp", 10, "worked"))

	fetched, err := svc.GetSession(ctx, "u1", sess.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Feedback, 2)
	assert.Equal(t, 0, fetched.Feedback[0].Rating)
	assert.Equal(t, 10, fetched.Feedback[1].Rating)
}

func TestHistory_IsPerUser(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, "u1", "", []domain.EmotionCategory{domain.EmotionStress})
	require.NoError(t, err)
	_, err = svc.StartSession(ctx, "u1", "", []domain.EmotionCategory{domain.EmotionAnxiety})
	require.NoError(t, err)
	_, err = svc.StartSession(ctx, "u2", "", []domain.EmotionCategory{domain.EmotionGrief})
	require.NoError(t, err)

	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	history, err = svc.History(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, history)
}
