package domain

// TherapeuticTechnique is an immutable catalog entry. ID is the stable key
// referenced by session records and feedback across a user's history.
type TherapeuticTechnique struct {
	ID                 string
	Name               string
	Approach           TherapeuticApproach
	Categories         []EmotionCategory
	Kind               TechniqueKind
	Description        string
	Instructions       []string
	TimeRequiredMin    int
	Difficulty         Difficulty
	EffectivenessScore float64
	Contraindications  []string

	// CBT-specific
	CognitiveDistortions []string
	ThoughtChallenges    []string
	BehavioralExperiment string

	// DBT-specific
	SkillModule string
	Acronym     string
	Steps       []string

	// Mindfulness-specific
	PracticeType string
	GuidedScript string
}

// AppliesTo reports whether the technique targets any of the given emotions.
func (t *TherapeuticTechnique) AppliesTo(emotions []EmotionCategory) bool {
	for _, cat := range t.Categories {
		for _, e := range emotions {
			if cat == e {
				return true
			}
		}
	}
	return false
}
