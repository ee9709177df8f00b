package catalog

// LexiconFile is the top-level JSON structure of the risk lexicon.
type LexiconFile struct {
	Version    string            `json:"version"`
	Indicators []IndicatorConfig `json:"indicators"`
}

type IndicatorConfig struct {
	Keyword  string   `json:"keyword"`
	Weight   float64  `json:"weight"`
	Category string   `json:"category"`
	Context  []string `json:"context,omitempty"`
}

// TechniquesFile is the top-level JSON structure of the technique catalog.
type TechniquesFile struct {
	Version    string            `json:"version"`
	Techniques []TechniqueConfig `json:"techniques"`
}

type TechniqueConfig struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Approach           string   `json:"approach"`
	Categories         []string `json:"categories"`
	Kind               string   `json:"kind"`
	Description        string   `json:"description"`
	Instructions       []string `json:"instructions"`
	TimeRequiredMin    int      `json:"time_required_min"`
	Difficulty         string   `json:"difficulty"`
	EffectivenessScore float64  `json:"effectiveness_score"`
	Contraindications  []string `json:"contraindications,omitempty"`

	CognitiveDistortions []string `json:"cognitive_distortions,omitempty"`
	ThoughtChallenges    []string `json:"thought_challenges,omitempty"`
	BehavioralExperiment string   `json:"behavioral_experiment,omitempty"`

	SkillModule string   `json:"skill_module,omitempty"`
	Acronym     string   `json:"acronym,omitempty"`
	Steps       []string `json:"steps,omitempty"`

	PracticeType string `json:"practice_type,omitempty"`
	GuidedScript string `json:"guided_script,omitempty"`
}

// ResourcesFile is the top-level JSON structure of the resource directory.
type ResourcesFile struct {
	Version   string           `json:"version"`
	Resources []ResourceConfig `json:"resources"`
}

type ResourceConfig struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	Availability string   `json:"availability"`
	Description  string   `json:"description"`
	Cost         string   `json:"cost"`
	Languages    []string `json:"languages"`
}
