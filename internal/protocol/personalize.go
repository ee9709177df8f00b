package protocol

import (
	"sort"

	"github.com/alexanderramin/solace/internal/domain"
)

// recentSessionWindow is how many of the user's latest sessions feed the
// novelty constraint; recentTechniqueCount caps the ids drawn from them.
const (
	recentSessionWindow  = 3
	recentTechniqueCount = 5
	topApproachCount     = 3
)

// EffectivenessByTechnique computes the mean rating per technique across a
// user's sessions, normalized from the 0-10 feedback scale into [0,1].
// Normalization happens only here, at aggregation time; the ledger stores
// ratings as entered.
func EffectivenessByTechnique(sessions []*domain.TherapeuticSession) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, s := range sessions {
		for _, fb := range s.Feedback {
			sums[fb.TechniqueID] += float64(fb.Rating) / 10
			counts[fb.TechniqueID]++
		}
	}

	out := make(map[string]float64, len(sums))
	for id, sum := range sums {
		out[id] = sum / float64(counts[id])
	}
	return out
}

// PreferredApproaches derives the user's top approaches by averaging their
// per-technique effectiveness within each approach. Techniques missing from
// the catalog are skipped rather than failing the aggregation.
func PreferredApproaches(sessions []*domain.TherapeuticSession, lookup func(id string) (*domain.TherapeuticTechnique, bool)) []domain.TherapeuticApproach {
	byTechnique := EffectivenessByTechnique(sessions)

	sums := map[domain.TherapeuticApproach]float64{}
	counts := map[domain.TherapeuticApproach]int{}
	for id, eff := range byTechnique {
		tech, ok := lookup(id)
		if !ok {
			continue
		}
		sums[tech.Approach] += eff
		counts[tech.Approach]++
	}

	type ranked struct {
		approach domain.TherapeuticApproach
		mean     float64
	}
	var all []ranked
	for a, sum := range sums {
		all = append(all, ranked{approach: a, mean: sum / float64(counts[a])})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].mean != all[j].mean {
			return all[i].mean > all[j].mean
		}
		return all[i].approach < all[j].approach
	})

	if len(all) > topApproachCount {
		all = all[:topApproachCount]
	}
	out := make([]domain.TherapeuticApproach, len(all))
	for i, r := range all {
		out[i] = r.approach
	}
	return out
}

// RecentTechniqueIDs returns the last n technique ids applied across the
// user's most recent sessions, oldest first. sessions must be ordered by
// start time ascending, as the ledger returns them.
func RecentTechniqueIDs(sessions []*domain.TherapeuticSession, n int) []string {
	start := len(sessions) - recentSessionWindow
	if start < 0 {
		start = 0
	}

	var ids []string
	for _, s := range sessions[start:] {
		ids = append(ids, s.AppliedTechniques...)
	}
	if len(ids) > n {
		ids = ids[len(ids)-n:]
	}
	return ids
}

// PersonalizedSelect runs Select with preferences inferred from the user's
// session history. A user with no history degrades to an unweighted Select.
// This is a pure read over the sessions; it never mutates them.
func (s *Selector) PersonalizedSelect(
	sessions []*domain.TherapeuticSession,
	lookup func(id string) (*domain.TherapeuticTechnique, bool),
	emotionalState []domain.EmotionCategory,
	intensity int,
	timeAvailableMin int,
) []domain.TherapeuticTechnique {
	prefs := Preferences{
		PreferredApproaches: PreferredApproaches(sessions, lookup),
	}
	recent := RecentTechniqueIDs(sessions, recentTechniqueCount)
	return s.Select(emotionalState, intensity, timeAvailableMin, prefs, recent)
}
