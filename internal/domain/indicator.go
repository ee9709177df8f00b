package domain

// CrisisIndicator is a risk lexicon entry. Weight reflects standalone
// severity on a 0-1 scale; context words multiply the effective weight
// when they appear in the same message, they never zero it out.
type CrisisIndicator struct {
	Keyword  string
	Weight   float64
	Category CrisisType
	Context  []string
}

// ProfessionalResource is a static crisis/professional directory entry.
type ProfessionalResource struct {
	Type         ResourceType
	Name         string
	Phone        string
	Website      string
	Availability Availability
	Description  string
	Cost         Cost
	Languages    []string
}
