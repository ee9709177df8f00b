package protocol

import (
	"testing"

	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewSelector(cat.Techniques())
}

func TestSelect_RanksByEffectiveness(t *testing.T) {
	s := newTestSelector(t)

	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 5, 30, Preferences{}, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "cbt-cognitive-restructuring", got[0].ID)
	assert.Equal(t, "mindfulness-grounding-5-4-3-2-1", got[1].ID)
	// Thought Record and Wise Mind tie at 0.85; catalog order breaks the tie.
	assert.Equal(t, "cbt-thought-record", got[2].ID)
}

func TestSelect_RespectsTimeBudget(t *testing.T) {
	s := newTestSelector(t)

	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 5, 5, Preferences{}, nil)

	require.NotEmpty(t, got)
	for _, tech := range got {
		assert.LessOrEqual(t, tech.TimeRequiredMin, 5)
	}
	assert.Equal(t, "mindfulness-grounding-5-4-3-2-1", got[0].ID)
}

func TestSelect_HighIntensityNarrowsToImmediate(t *testing.T) {
	s := newTestSelector(t)

	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 8, 30, Preferences{}, nil)

	require.NotEmpty(t, got)
	for _, tech := range got {
		assert.Equal(t, domain.KindImmediate, tech.Kind)
	}

	// One step below the cutoff the full candidate set is back in play.
	got = s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 7, 30, Preferences{}, nil)
	require.NotEmpty(t, got)
	assert.Equal(t, "cbt-cognitive-restructuring", got[0].ID)
}

func TestSelect_NoveltyExcludesRecentTechniques(t *testing.T) {
	s := newTestSelector(t)

	used := []string{"cbt-cognitive-restructuring", "mindfulness-grounding-5-4-3-2-1"}
	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 5, 30, Preferences{}, used)

	require.NotEmpty(t, got)
	for _, tech := range got {
		assert.NotContains(t, used, tech.ID)
	}
	assert.Equal(t, "cbt-thought-record", got[0].ID)
}

func TestSelect_PreferredApproachFilter(t *testing.T) {
	s := newTestSelector(t)

	prefs := Preferences{PreferredApproaches: []domain.TherapeuticApproach{domain.ApproachMindfulness}}
	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 5, 30, prefs, nil)

	require.Len(t, got, 3)
	for _, tech := range got {
		assert.Equal(t, domain.ApproachMindfulness, tech.Approach)
	}
	assert.Equal(t, "mindfulness-grounding-5-4-3-2-1", got[0].ID)
}

func TestSelect_DifficultyFilter(t *testing.T) {
	s := newTestSelector(t)

	prefs := Preferences{Difficulty: domain.DifficultyIntermediate}
	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 5, 30, prefs, nil)

	require.NotEmpty(t, got)
	for _, tech := range got {
		assert.Equal(t, domain.DifficultyIntermediate, tech.Difficulty)
	}
}

func TestSelect_ImmediateOverrideRelaxesPreferences(t *testing.T) {
	s := newTestSelector(t)

	// CBT has no immediate-relief technique; at high intensity the immediate
	// filter must win over the approach preference rather than return nothing.
	prefs := Preferences{PreferredApproaches: []domain.TherapeuticApproach{domain.ApproachCBT}}
	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 9, 30, prefs, nil)

	require.NotEmpty(t, got)
	for _, tech := range got {
		assert.Equal(t, domain.KindImmediate, tech.Kind)
	}
}

func TestSelect_ImmediateOverrideRelaxesNovelty(t *testing.T) {
	s := newTestSelector(t)

	used := []string{"dbt-tipp", "mindfulness-breathing-anchor", "mindfulness-grounding-5-4-3-2-1"}
	got := s.Select([]domain.EmotionCategory{domain.EmotionAnxiety}, 9, 30, Preferences{}, used)

	require.NotEmpty(t, got, "acute distress must still produce a grounding technique")
	for _, tech := range got {
		assert.Equal(t, domain.KindImmediate, tech.Kind)
	}
}

func TestSelect_EmptyResultIsNotAnError(t *testing.T) {
	s := newTestSelector(t)

	// No relationship technique fits a five-minute window.
	got := s.Select([]domain.EmotionCategory{domain.EmotionRelationship}, 5, 5, Preferences{}, nil)
	assert.Empty(t, got)
}

func TestSelect_CapsAtThree(t *testing.T) {
	s := newTestSelector(t)

	emotions := []domain.EmotionCategory{
		domain.EmotionAnxiety, domain.EmotionDepression, domain.EmotionStress,
	}
	got := s.Select(emotions, 5, 60, Preferences{}, nil)
	assert.Len(t, got, 3)
}

func TestSelect_Deterministic(t *testing.T) {
	s := newTestSelector(t)

	first := s.Select([]domain.EmotionCategory{domain.EmotionStress}, 5, 30, Preferences{}, nil)
	second := s.Select([]domain.EmotionCategory{domain.EmotionStress}, 5, 30, Preferences{}, nil)
	assert.Equal(t, first, second)
}
