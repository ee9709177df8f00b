package domain

import "fmt"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskImminent RiskLevel = "imminent"
)

// Severity returns the position of the level in the total order
// low < moderate < high < imminent. Unknown levels sort below low.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskImminent:
		return 3
	}
	return -1
}

type InterventionUrgency string

const (
	UrgencyImmediate  InterventionUrgency = "immediate"
	UrgencyUrgent     InterventionUrgency = "urgent"
	UrgencyRoutine    InterventionUrgency = "routine"
	UrgencyMonitoring InterventionUrgency = "monitoring"
)

type EmotionCategory string

const (
	EmotionAnxiety      EmotionCategory = "anxiety"
	EmotionDepression   EmotionCategory = "depression"
	EmotionAnger        EmotionCategory = "anger"
	EmotionGrief        EmotionCategory = "grief"
	EmotionTrauma       EmotionCategory = "trauma"
	EmotionStress       EmotionCategory = "stress"
	EmotionRelationship EmotionCategory = "relationship"
	EmotionSelfEsteem   EmotionCategory = "self_esteem"
)

// ValidEmotionCategories is the canonical set of accepted emotion strings.
var ValidEmotionCategories = map[string]bool{
	"anxiety": true, "depression": true, "anger": true, "grief": true,
	"trauma": true, "stress": true, "relationship": true, "self_esteem": true,
}

// ParseEmotionCategory validates and converts a raw emotion string.
func ParseEmotionCategory(s string) (EmotionCategory, error) {
	if !ValidEmotionCategories[s] {
		return "", fmt.Errorf("unknown emotion category %q", s)
	}
	return EmotionCategory(s), nil
}

type CrisisType string

const (
	CrisisSuicide          CrisisType = "suicide"
	CrisisSelfHarm         CrisisType = "self_harm"
	CrisisPsychosis        CrisisType = "psychosis"
	CrisisSubstanceAbuse   CrisisType = "substance_abuse"
	CrisisDomesticViolence CrisisType = "domestic_violence"
	CrisisEatingDisorder   CrisisType = "eating_disorder"
	CrisisSevereAnxiety    CrisisType = "severe_anxiety"
	CrisisSevereDepression CrisisType = "severe_depression"
)

// ValidCrisisTypes is the canonical set of accepted crisis type strings.
var ValidCrisisTypes = map[string]bool{
	"suicide": true, "self_harm": true, "psychosis": true,
	"substance_abuse": true, "domestic_violence": true,
	"eating_disorder": true, "severe_anxiety": true, "severe_depression": true,
}

type TherapeuticApproach string

const (
	ApproachCBT           TherapeuticApproach = "CBT"
	ApproachDBT           TherapeuticApproach = "DBT"
	ApproachACT           TherapeuticApproach = "ACT"
	ApproachMindfulness   TherapeuticApproach = "mindfulness"
	ApproachPsychodynamic TherapeuticApproach = "psychodynamic"
	ApproachHumanistic    TherapeuticApproach = "humanistic"
	ApproachSomatic       TherapeuticApproach = "somatic"
)

// ValidApproaches is the canonical set of accepted approach strings.
var ValidApproaches = map[string]bool{
	"CBT": true, "DBT": true, "ACT": true, "mindfulness": true,
	"psychodynamic": true, "humanistic": true, "somatic": true,
}

// TechniqueKind classifies how a technique intervenes.
type TechniqueKind string

const (
	KindImmediate           TechniqueKind = "immediate"
	KindSkillBuilding       TechniqueKind = "skill_building"
	KindInsight             TechniqueKind = "insight"
	KindBehavioral          TechniqueKind = "behavioral"
	KindCognitive           TechniqueKind = "cognitive"
	KindEmotionalRegulation TechniqueKind = "emotional_regulation"
)

// ValidTechniqueKinds is the canonical set of accepted kind strings.
var ValidTechniqueKinds = map[string]bool{
	"immediate": true, "skill_building": true, "insight": true,
	"behavioral": true, "cognitive": true, "emotional_regulation": true,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

type ResourceType string

const (
	ResourceCrisisHotline ResourceType = "crisis_hotline"
	ResourceEmergency     ResourceType = "emergency"
	ResourceTherapist     ResourceType = "therapist"
	ResourcePsychiatrist  ResourceType = "psychiatrist"
	ResourceSupportGroup  ResourceType = "support_group"
	ResourceMedical       ResourceType = "medical"
)

type Availability string

const (
	AvailAlways        Availability = "24/7"
	AvailBusinessHours Availability = "business_hours"
	AvailVaries        Availability = "varies"
)

type Cost string

const (
	CostFree           Cost = "free"
	CostVaries         Cost = "varies"
	CostInsuranceBased Cost = "insurance_based"
)
