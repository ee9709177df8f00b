package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "82%", Percent(0.82))
	assert.Equal(t, "100%", Percent(1))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestRiskBadge_CoversAllLevels(t *testing.T) {
	assert.Contains(t, RiskBadge(domain.RiskImminent), "IMMINENT")
	assert.Contains(t, RiskBadge(domain.RiskHigh), "HIGH")
	assert.Contains(t, RiskBadge(domain.RiskModerate), "MODERATE")
	assert.Contains(t, RiskBadge(domain.RiskLow), "LOW")
	assert.Contains(t, RiskBadge(domain.RiskLevel("")), "UNKNOWN")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"a1", "Breathing Anchor"},
			{"b2", "TIPP"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Breathing Anchor")

	// Second column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[2], "Breathing"), strings.Index(lines[3], "TIPP"))
}

func TestFormatSafetyPlan_SkipsEmptySections(t *testing.T) {
	out := FormatSafetyPlan(&domain.SafetyPlan{
		UserID:         "u1",
		WarningSignals: []string{"not sleeping"},
		SupportContacts: []domain.SupportContact{
			{Name: "Sam", Relationship: "friend", Phone: "555-0100"},
		},
		LastUpdated: time.Now(),
	})

	assert.Contains(t, out, "WARNING SIGNALS")
	assert.Contains(t, out, "not sleeping")
	assert.Contains(t, out, "Sam")
	assert.NotContains(t, out, "COPING STRATEGIES")
}
