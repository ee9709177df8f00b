package catalog

import (
	"fmt"

	"github.com/alexanderramin/solace/internal/domain"
)

// ValidateLexicon checks a LexiconFile for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateLexicon(f *LexiconFile) []error {
	var errs []error

	if len(f.Indicators) == 0 {
		errs = append(errs, fmt.Errorf("at least one indicator is required"))
	}

	keywords := map[string]bool{}
	for i, ind := range f.Indicators {
		if ind.Keyword == "" {
			errs = append(errs, fmt.Errorf("indicator[%d]: keyword is required", i))
		}
		if ind.Weight < 0 || ind.Weight > 1 {
			errs = append(errs, fmt.Errorf("indicator[%d]: weight %v outside [0,1]", i, ind.Weight))
		}
		if !domain.ValidCrisisTypes[ind.Category] {
			errs = append(errs, fmt.Errorf("indicator[%d]: unknown crisis category %q", i, ind.Category))
		}
		if keywords[ind.Keyword] {
			errs = append(errs, fmt.Errorf("indicator[%d]: duplicate keyword %q", i, ind.Keyword))
		}
		keywords[ind.Keyword] = true
	}

	return errs
}

// ValidateTechniques checks a TechniquesFile for structural errors.
func ValidateTechniques(f *TechniquesFile) []error {
	var errs []error

	if len(f.Techniques) == 0 {
		errs = append(errs, fmt.Errorf("at least one technique is required"))
	}

	ids := map[string]bool{}
	for i, t := range f.Techniques {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("technique[%d]: id is required", i))
		}
		if ids[t.ID] {
			errs = append(errs, fmt.Errorf("technique[%d]: duplicate id %q", i, t.ID))
		}
		ids[t.ID] = true
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("technique[%d]: name is required", i))
		}
		if !domain.ValidApproaches[t.Approach] {
			errs = append(errs, fmt.Errorf("technique[%d]: unknown approach %q", i, t.Approach))
		}
		if len(t.Categories) == 0 {
			errs = append(errs, fmt.Errorf("technique[%d]: at least one category is required", i))
		}
		for _, cat := range t.Categories {
			if !domain.ValidEmotionCategories[cat] {
				errs = append(errs, fmt.Errorf("technique[%d]: unknown emotion category %q", i, cat))
			}
		}
		if !domain.ValidTechniqueKinds[t.Kind] {
			errs = append(errs, fmt.Errorf("technique[%d]: unknown kind %q", i, t.Kind))
		}
		if len(t.Instructions) == 0 {
			errs = append(errs, fmt.Errorf("technique[%d]: instructions are required", i))
		}
		if t.TimeRequiredMin <= 0 {
			errs = append(errs, fmt.Errorf("technique[%d]: time_required_min must be > 0", i))
		}
		if !domain.ValidDifficulties[t.Difficulty] {
			errs = append(errs, fmt.Errorf("technique[%d]: unknown difficulty %q", i, t.Difficulty))
		}
		if t.EffectivenessScore < 0 || t.EffectivenessScore > 1 {
			errs = append(errs, fmt.Errorf("technique[%d]: effectiveness_score %v outside [0,1]", i, t.EffectivenessScore))
		}
	}

	return errs
}

// validResourceTypes mirrors the ResourceType enum.
var validResourceTypes = map[string]bool{
	"crisis_hotline": true, "emergency": true, "therapist": true,
	"psychiatrist": true, "support_group": true, "medical": true,
}

var validAvailabilities = map[string]bool{
	"24/7": true, "business_hours": true, "varies": true,
}

var validCosts = map[string]bool{
	"free": true, "varies": true, "insurance_based": true,
}

// ValidateResources checks a ResourcesFile for structural errors.
func ValidateResources(f *ResourcesFile) []error {
	var errs []error

	if len(f.Resources) == 0 {
		errs = append(errs, fmt.Errorf("at least one resource is required"))
	}

	names := map[string]bool{}
	for i, r := range f.Resources {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("resource[%d]: name is required", i))
		}
		if names[r.Name] {
			errs = append(errs, fmt.Errorf("resource[%d]: duplicate name %q", i, r.Name))
		}
		names[r.Name] = true
		if !validResourceTypes[r.Type] {
			errs = append(errs, fmt.Errorf("resource[%d]: unknown type %q", i, r.Type))
		}
		if !validAvailabilities[r.Availability] {
			errs = append(errs, fmt.Errorf("resource[%d]: unknown availability %q", i, r.Availability))
		}
		if !validCosts[r.Cost] {
			errs = append(errs, fmt.Errorf("resource[%d]: unknown cost %q", i, r.Cost))
		}
	}

	return errs
}
