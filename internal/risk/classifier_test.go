package risk

import (
	"testing"

	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewClassifier(cat.Indicators(), cat.Resources(), DefaultThresholds())
}

func TestAssess_Deterministic(t *testing.T) {
	c := newTestClassifier(t)

	first, err := c.Assess("I feel hopeless and there is no way out", 7, nil)
	require.NoError(t, err)
	second, err := c.Assess("I feel hopeless and there is no way out", 7, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssess_IntensityMonotonic(t *testing.T) {
	c := newTestClassifier(t)

	messages := []string{
		"I've been really stressed about work deadlines",
		"sometimes I think about hurting myself",
		"I feel completely hopeless",
	}
	for _, msg := range messages {
		prev := -1
		for intensity := 0; intensity <= 10; intensity++ {
			a, err := c.Assess(msg, intensity, nil)
			require.NoError(t, err)
			sev := a.RiskLevel.Severity()
			assert.GreaterOrEqual(t, sev, prev, "risk level must not decrease as intensity rises (%q at %d)", msg, intensity)
			prev = sev
		}
	}
}

func TestAssess_KeywordCoverage(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	c := NewClassifier(cat.Indicators(), cat.Resources(), DefaultThresholds())

	for _, ind := range cat.Indicators() {
		a, err := c.Assess(ind.Keyword, 5, nil)
		require.NoError(t, err)
		assert.Contains(t, a.TriggerKeywords, ind.Keyword)
		assert.Contains(t, a.CrisisTypes, ind.Category)
	}
}

func TestAssess_ThresholdBoundary(t *testing.T) {
	resources := []domain.ProfessionalResource{}

	exact := NewClassifier([]domain.CrisisIndicator{
		{Keyword: "boundary phrase", Weight: 0.9, Category: domain.CrisisSuicide},
	}, resources, DefaultThresholds())
	a, err := exact.Assess("boundary phrase", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskImminent, a.RiskLevel)
	assert.Equal(t, domain.UrgencyImmediate, a.RecommendedAction)

	below := NewClassifier([]domain.CrisisIndicator{
		{Keyword: "boundary phrase", Weight: 0.89, Category: domain.CrisisSuicide},
	}, resources, DefaultThresholds())
	a, err = below.Assess("boundary phrase", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, a.RiskLevel)
}

func TestAssess_ContextAmplifies(t *testing.T) {
	c := newTestClassifier(t)

	// "cutting" alone carries weight 0.6.
	plain, err := c.Assess("I have been cutting", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, plain.RiskLevel)

	// Two context matches lift it to 0.6 * 1.4 = 0.84, still high but with
	// a larger single score and confidence.
	amplified, err := c.Assess("I have been cutting my arms and wrists", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, amplified.RiskLevel)
	assert.Greater(t, amplified.Confidence, plain.Confidence)
}

func TestAssess_ImminentCrisisScenario(t *testing.T) {
	c := newTestClassifier(t)

	a, err := c.Assess("I want to kill myself", 9, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.RiskImminent, a.RiskLevel)
	assert.Contains(t, a.CrisisTypes, domain.CrisisSuicide)
	assert.Equal(t, domain.UrgencyImmediate, a.RecommendedAction)
	assert.Equal(t, "Immediate (within minutes)", a.Timeframe)

	require.NotEmpty(t, a.ProfessionalReferrals)
	assert.LessOrEqual(t, len(a.ProfessionalReferrals), 5)
	has247 := false
	for _, r := range a.ProfessionalReferrals {
		if r.Availability == domain.AvailAlways {
			has247 = true
		}
	}
	assert.True(t, has247, "imminent referrals must include a 24/7 resource")
}

func TestAssess_ModerateStressScenario(t *testing.T) {
	c := newTestClassifier(t)

	a, err := c.Assess("I've been really stressed about work deadlines", 5, nil)
	require.NoError(t, err)

	assert.Contains(t, []domain.RiskLevel{domain.RiskLow, domain.RiskModerate}, a.RiskLevel)
	assert.Empty(t, a.CrisisTypes)
	assert.Empty(t, a.TriggerKeywords)
	assert.NotEqual(t, domain.UrgencyImmediate, a.RecommendedAction)
}

func TestAssess_IntensityAloneReachesModerate(t *testing.T) {
	c := newTestClassifier(t)

	a, err := c.Assess("I've been really stressed about work deadlines", 7, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskModerate, a.RiskLevel)
}

func TestAssess_ConfidenceCapped(t *testing.T) {
	c := newTestClassifier(t)

	a, err := c.Assess("I want to kill myself and end my life, I am suicidal", 9, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Confidence)
}

func TestAssess_CrisisTypeSteps(t *testing.T) {
	c := newTestClassifier(t)

	a, err := c.Assess("I think I'm addicted and drinking too much", 5, nil)
	require.NoError(t, err)
	assert.Contains(t, a.CrisisTypes, domain.CrisisSubstanceAbuse)
	assert.Contains(t, a.ImmediateSteps, "Contact SAMHSA helpline for substance abuse support")

	a, err = c.Assess("my partner keeps hitting me", 5, nil)
	require.NoError(t, err)
	assert.Contains(t, a.CrisisTypes, domain.CrisisDomesticViolence)
	assert.Contains(t, a.ImmediateSteps, "Contact National Domestic Violence Hotline")
}

func TestSelectReferrals_CategoryFilters(t *testing.T) {
	c := newTestClassifier(t)

	names := resourceNames(c.selectReferrals([]domain.CrisisType{domain.CrisisEatingDisorder}, domain.RiskModerate))
	assert.Contains(t, names, "National Eating Disorders Association")

	names = resourceNames(c.selectReferrals([]domain.CrisisType{domain.CrisisSubstanceAbuse}, domain.RiskModerate))
	assert.Contains(t, names, "SAMHSA National Helpline")

	names = resourceNames(c.selectReferrals([]domain.CrisisType{domain.CrisisDomesticViolence}, domain.RiskModerate))
	assert.Contains(t, names, "National Domestic Violence Hotline")
}

func TestSelectReferrals_UniversalCrisisResourcesAtHighRisk(t *testing.T) {
	c := newTestClassifier(t)

	names := resourceNames(c.selectReferrals([]domain.CrisisType{domain.CrisisEatingDisorder}, domain.RiskHigh))
	assert.Contains(t, names, "National Suicide Prevention Lifeline")
	assert.Contains(t, names, "Crisis Text Line")
	assert.Contains(t, names, "Emergency Services (911)")
}

func TestSelectReferrals_UnmatchedCategoryIsNotAnError(t *testing.T) {
	c := NewClassifier(nil, nil, DefaultThresholds())

	refs := c.selectReferrals([]domain.CrisisType{domain.CrisisPsychosis}, domain.RiskLow)
	assert.Empty(t, refs)
}

func TestAssess_ReferralsDeduplicatedAndCapped(t *testing.T) {
	c := newTestClassifier(t)

	a, err := c.Assess("I want to end my life", 9, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(a.ProfessionalReferrals), 5)
	seen := map[string]bool{}
	for _, r := range a.ProfessionalReferrals {
		assert.False(t, seen[r.Name], "duplicate referral %q", r.Name)
		seen[r.Name] = true
	}
}

func TestAssess_RejectsMalformedInput(t *testing.T) {
	c := newTestClassifier(t)

	_, err := c.Assess("hello", -1, nil)
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = c.Assess("hello", 11, nil)
	require.Error(t, err)

	_, err = c.Assess("   ", 5, nil)
	require.Error(t, err)
}

func TestAssessCrisis_ImmediateFlag(t *testing.T) {
	c := newTestClassifier(t)

	// Suicide language is always immediate.
	resp, err := c.AssessCrisis("I want to kill myself", 3, nil)
	require.NoError(t, err)
	assert.True(t, resp.IsImmediate)
	assert.True(t, resp.Documentation.EscalationRequired)
	assert.Contains(t, resp.ImmediateResponse, "988")

	// High risk plus intensity >= 8 is immediate even without suicide language.
	resp, err = c.AssessCrisis("I keep staring at the razor", 9, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, resp.Assessment.RiskLevel)
	assert.True(t, resp.IsImmediate)

	// Low risk is never immediate.
	resp, err = c.AssessCrisis("work has been a bit much lately", 4, nil)
	require.NoError(t, err)
	assert.False(t, resp.IsImmediate)
	assert.Equal(t, domain.RiskLow, resp.Assessment.RiskLevel)
}

func TestAssessCrisis_FollowUpActions(t *testing.T) {
	c := newTestClassifier(t)

	resp, err := c.AssessCrisis("I want to end my life", 9, nil)
	require.NoError(t, err)
	assert.Contains(t, resp.FollowUpActions, "Follow up within 24-48 hours")

	resp, err = c.AssessCrisis("feeling a little down today", 3, nil)
	require.NoError(t, err)
	assert.Contains(t, resp.FollowUpActions, "Monitor for escalation in future sessions")
}

func TestContainsCrisisIndicators(t *testing.T) {
	c := newTestClassifier(t)

	assert.True(t, c.ContainsCrisisIndicators("I feel like there's NO WAY OUT"))
	assert.False(t, c.ContainsCrisisIndicators("lovely weather today"))
}

func TestEmergencyResources(t *testing.T) {
	c := newTestClassifier(t)

	emergency := c.EmergencyResources()
	require.NotEmpty(t, emergency)
	for _, r := range emergency {
		assert.Equal(t, domain.AvailAlways, r.Availability)
	}
}

func resourceNames(resources []domain.ProfessionalResource) []string {
	names := make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.Name
	}
	return names
}
