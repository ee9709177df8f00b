package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Techniques(), 11)
	assert.Len(t, c.Indicators(), 45)
	assert.Len(t, c.Resources(), 11)
}

func TestLoad_TechniqueLookup(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tech, ok := c.TechniqueByID("dbt-tipp")
	require.True(t, ok)
	assert.Equal(t, domain.ApproachDBT, tech.Approach)
	assert.Equal(t, domain.KindImmediate, tech.Kind)
	assert.Equal(t, 5, tech.TimeRequiredMin)

	_, ok = c.TechniqueByID("does-not-exist")
	assert.False(t, ok)
}

func TestLoad_EmergencyResources(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	emergency := c.EmergencyResources()
	require.NotEmpty(t, emergency)
	for _, r := range emergency {
		assert.Equal(t, domain.AvailAlways, r.Availability)
		assert.Contains(t, []domain.ResourceType{domain.ResourceCrisisHotline, domain.ResourceEmergency}, r.Type)
	}
}

func TestLoadDir_OverridesSingleFile(t *testing.T) {
	dir := t.TempDir()
	override := `{
		"version": "test",
		"indicators": [
			{ "keyword": "test phrase", "weight": 0.9, "category": "suicide" }
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lexicon.json"), []byte(override), 0644))

	c, err := LoadDir(dir)
	require.NoError(t, err)

	// Lexicon overridden, other registries fall back to embedded defaults.
	assert.Len(t, c.Indicators(), 1)
	assert.Equal(t, "test phrase", c.Indicators()[0].Keyword)
	assert.Len(t, c.Techniques(), 11)
	assert.Len(t, c.Resources(), 11)
}

func TestLoadDir_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "techniques.json"), []byte("{not json"), 0644))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "techniques.json")
}

func TestValidateLexicon_RejectsBadEntries(t *testing.T) {
	f := &LexiconFile{Indicators: []IndicatorConfig{
		{Keyword: "", Weight: 0.5, Category: "suicide"},
		{Keyword: "dup", Weight: 1.5, Category: "suicide"},
		{Keyword: "dup", Weight: 0.5, Category: "nonsense"},
	}}
	errs := ValidateLexicon(f)
	require.Len(t, errs, 4)
}

func TestValidateTechniques_RejectsBadEntries(t *testing.T) {
	f := &TechniquesFile{Techniques: []TechniqueConfig{
		{
			ID: "x", Name: "X", Approach: "CBT", Categories: []string{"anxiety"},
			Kind: "cognitive", Instructions: []string{"step"}, TimeRequiredMin: 0,
			Difficulty: "beginner", EffectivenessScore: 1.2,
		},
	}}
	errs := ValidateTechniques(f)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "time_required_min")
	assert.Contains(t, errs[1].Error(), "effectiveness_score")
}

func TestValidateResources_RejectsDuplicateNames(t *testing.T) {
	f := &ResourcesFile{Resources: []ResourceConfig{
		{Type: "emergency", Name: "Same", Availability: "24/7", Cost: "free"},
		{Type: "emergency", Name: "Same", Availability: "24/7", Cost: "free"},
	}}
	errs := ValidateResources(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate name")
}
