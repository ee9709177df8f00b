package catalog

import (
	"github.com/alexanderramin/solace/internal/domain"
)

// Catalog holds the three static registries. It is immutable after Load and
// safe to share across goroutines without synchronization.
type Catalog struct {
	techniques  []domain.TherapeuticTechnique
	techniqueID map[string]int
	indicators  []domain.CrisisIndicator
	resources   []domain.ProfessionalResource
}

// Techniques returns all catalog techniques in file order.
func (c *Catalog) Techniques() []domain.TherapeuticTechnique {
	return c.techniques
}

// TechniqueByID looks up a technique by its stable id.
func (c *Catalog) TechniqueByID(id string) (*domain.TherapeuticTechnique, bool) {
	idx, ok := c.techniqueID[id]
	if !ok {
		return nil, false
	}
	return &c.techniques[idx], true
}

// Indicators returns all risk lexicon entries in file order.
func (c *Catalog) Indicators() []domain.CrisisIndicator {
	return c.indicators
}

// Resources returns all directory entries in file order.
func (c *Catalog) Resources() []domain.ProfessionalResource {
	return c.resources
}

// EmergencyResources returns the 24/7 hotline and emergency entries.
func (c *Catalog) EmergencyResources() []domain.ProfessionalResource {
	var out []domain.ProfessionalResource
	for _, r := range c.resources {
		if r.Availability == domain.AvailAlways &&
			(r.Type == domain.ResourceCrisisHotline || r.Type == domain.ResourceEmergency) {
			out = append(out, r)
		}
	}
	return out
}

func build(lex *LexiconFile, tech *TechniquesFile, res *ResourcesFile) *Catalog {
	c := &Catalog{techniqueID: make(map[string]int, len(tech.Techniques))}

	for i, t := range tech.Techniques {
		cats := make([]domain.EmotionCategory, len(t.Categories))
		for j, s := range t.Categories {
			cats[j] = domain.EmotionCategory(s)
		}
		c.techniques = append(c.techniques, domain.TherapeuticTechnique{
			ID:                   t.ID,
			Name:                 t.Name,
			Approach:             domain.TherapeuticApproach(t.Approach),
			Categories:           cats,
			Kind:                 domain.TechniqueKind(t.Kind),
			Description:          t.Description,
			Instructions:         t.Instructions,
			TimeRequiredMin:      t.TimeRequiredMin,
			Difficulty:           domain.Difficulty(t.Difficulty),
			EffectivenessScore:   t.EffectivenessScore,
			Contraindications:    t.Contraindications,
			CognitiveDistortions: t.CognitiveDistortions,
			ThoughtChallenges:    t.ThoughtChallenges,
			BehavioralExperiment: t.BehavioralExperiment,
			SkillModule:          t.SkillModule,
			Acronym:              t.Acronym,
			Steps:                t.Steps,
			PracticeType:         t.PracticeType,
			GuidedScript:         t.GuidedScript,
		})
		c.techniqueID[t.ID] = i
	}

	for _, ind := range lex.Indicators {
		c.indicators = append(c.indicators, domain.CrisisIndicator{
			Keyword:  ind.Keyword,
			Weight:   ind.Weight,
			Category: domain.CrisisType(ind.Category),
			Context:  ind.Context,
		})
	}

	for _, r := range res.Resources {
		c.resources = append(c.resources, domain.ProfessionalResource{
			Type:         domain.ResourceType(r.Type),
			Name:         r.Name,
			Phone:        r.Phone,
			Website:      r.Website,
			Availability: domain.Availability(r.Availability),
			Description:  r.Description,
			Cost:         domain.Cost(r.Cost),
			Languages:    r.Languages,
		})
	}

	return c
}
