package risk

import (
	"strings"

	"github.com/alexanderramin/solace/internal/domain"
)

// selectReferrals filters the directory by detected crisis categories,
// prepends the universal 24/7 crisis resources at high or imminent risk,
// deduplicates by name, and caps the list.
func (c *Classifier) selectReferrals(crisisTypes []domain.CrisisType, level domain.RiskLevel) []domain.ProfessionalResource {
	relevant := c.resources

	switch {
	case containsCrisisType(crisisTypes, domain.CrisisSuicide) || containsCrisisType(crisisTypes, domain.CrisisSelfHarm):
		relevant = filterResources(relevant, func(r domain.ProfessionalResource) bool {
			return r.Type == domain.ResourceCrisisHotline || r.Type == domain.ResourceEmergency ||
				strings.Contains(r.Name, "Suicide")
		})
	case containsCrisisType(crisisTypes, domain.CrisisSubstanceAbuse):
		relevant = filterResources(relevant, func(r domain.ProfessionalResource) bool {
			return strings.Contains(r.Name, "SAMHSA") || strings.Contains(r.Name, "Alcoholics") ||
				r.Type == domain.ResourceCrisisHotline
		})
	case containsCrisisType(crisisTypes, domain.CrisisDomesticViolence):
		relevant = filterResources(relevant, func(r domain.ProfessionalResource) bool {
			return strings.Contains(r.Name, "Domestic Violence") || r.Type == domain.ResourceCrisisHotline
		})
	case containsCrisisType(crisisTypes, domain.CrisisEatingDisorder):
		relevant = filterResources(relevant, func(r domain.ProfessionalResource) bool {
			return strings.Contains(r.Name, "Eating Disorders") || r.Type == domain.ResourceCrisisHotline
		})
	}

	if level == domain.RiskImminent || level == domain.RiskHigh {
		basic := filterResources(c.resources, func(r domain.ProfessionalResource) bool {
			return strings.Contains(r.Name, "Suicide Prevention") || strings.Contains(r.Name, "Crisis Text") ||
				r.Type == domain.ResourceEmergency
		})
		relevant = append(basic, relevant...)
	}

	var unique []domain.ProfessionalResource
	seen := map[string]bool{}
	for _, r := range relevant {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		unique = append(unique, r)
		if len(unique) == c.th.MaxReferrals {
			break
		}
	}
	return unique
}

func filterResources(in []domain.ProfessionalResource, keep func(domain.ProfessionalResource) bool) []domain.ProfessionalResource {
	var out []domain.ProfessionalResource
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
