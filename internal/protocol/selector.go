package protocol

import (
	"sort"

	"github.com/alexanderramin/solace/internal/domain"
)

// maxRecommendations caps the ranked shortlist returned by Select.
const maxRecommendations = 3

// highIntensity is the reported intensity at which selection narrows to
// immediate-relief techniques.
const highIntensity = 8

// Preferences narrows candidate techniques. Zero values impose no filter.
type Preferences struct {
	PreferredApproaches []domain.TherapeuticApproach
	Difficulty          domain.Difficulty
}

// Selector ranks catalog techniques against a user's current state.
type Selector struct {
	techniques []domain.TherapeuticTechnique
}

// NewSelector builds a selector over the given catalog techniques.
func NewSelector(techniques []domain.TherapeuticTechnique) *Selector {
	return &Selector{techniques: techniques}
}

// Select returns up to three techniques matching the emotional state, time
// budget, preferences, and novelty constraint, ranked by effectiveness.
//
// At intensity >= 8 the candidate set narrows to immediate-relief
// techniques; in that case the immediate-kind filter takes precedence over
// approach and difficulty preferences rather than returning nothing.
// An empty result means no eligible technique, not an error.
func (s *Selector) Select(
	emotionalState []domain.EmotionCategory,
	intensity int,
	timeAvailableMin int,
	prefs Preferences,
	previouslyUsed []string,
) []domain.TherapeuticTechnique {
	used := map[string]bool{}
	for _, id := range previouslyUsed {
		used[id] = true
	}

	matches := func(t *domain.TherapeuticTechnique, applyPrefs, applyNovelty bool) bool {
		if !t.AppliesTo(emotionalState) {
			return false
		}
		if t.TimeRequiredMin > timeAvailableMin {
			return false
		}
		if applyNovelty && used[t.ID] {
			return false
		}
		if applyPrefs {
			if prefs.Difficulty != "" && t.Difficulty != prefs.Difficulty {
				return false
			}
			if len(prefs.PreferredApproaches) > 0 && !containsApproach(prefs.PreferredApproaches, t.Approach) {
				return false
			}
		}
		return true
	}

	var candidates []domain.TherapeuticTechnique
	for i := range s.techniques {
		if matches(&s.techniques[i], true, true) {
			candidates = append(candidates, s.techniques[i])
		}
	}

	if intensity >= highIntensity {
		immediate := filterKind(candidates, domain.KindImmediate)
		if len(immediate) == 0 {
			// Preferences excluded every immediate option; relax them
			// rather than leave a user in acute distress without a
			// grounding technique.
			immediate = s.collectImmediate(matches, true)
		}
		if len(immediate) == 0 {
			// Novelty is the sole remaining filter that may be violated,
			// and only here: repeating a grounding technique beats
			// recommending nothing during acute distress.
			immediate = s.collectImmediate(matches, false)
		}
		candidates = immediate
	}

	// Stable sort keeps catalog insertion order on ties, for determinism.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectivenessScore > candidates[j].EffectivenessScore
	})

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	return candidates
}

func (s *Selector) collectImmediate(matches func(*domain.TherapeuticTechnique, bool, bool) bool, applyNovelty bool) []domain.TherapeuticTechnique {
	var out []domain.TherapeuticTechnique
	for i := range s.techniques {
		if s.techniques[i].Kind == domain.KindImmediate && matches(&s.techniques[i], false, applyNovelty) {
			out = append(out, s.techniques[i])
		}
	}
	return out
}

func filterKind(in []domain.TherapeuticTechnique, kind domain.TechniqueKind) []domain.TherapeuticTechnique {
	var out []domain.TherapeuticTechnique
	for _, t := range in {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

func containsApproach(approaches []domain.TherapeuticApproach, a domain.TherapeuticApproach) bool {
	for _, x := range approaches {
		if x == a {
			return true
		}
	}
	return false
}
