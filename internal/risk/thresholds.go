package risk

// Thresholds holds the classifier's tunable cut points and multipliers.
// The defaults reproduce the shipped triage behavior; deployments that
// retune them are responsible for revalidating the scenario suite.
type Thresholds struct {
	// Risk level cut points applied to max(total score, largest single match).
	ImminentScore  float64
	HighTotal      float64
	HighSingle     float64
	ModerateTotal  float64
	ModerateIntens int

	// Intensity amplification of the total score.
	HighIntensity      int
	HighMultiplier     float64
	ElevatedIntensity  int
	ElevatedMultiplier float64

	// ContextStep is the per-context-match increase of an indicator's weight.
	ContextStep float64
	// ConfidenceStep is the per-matched-keyword increase of confidence.
	ConfidenceStep float64

	// MaxReferrals caps the professional referral list.
	MaxReferrals int
}

// DefaultThresholds returns the standard triage constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ImminentScore:      0.9,
		HighTotal:          0.6,
		HighSingle:         0.7,
		ModerateTotal:      0.3,
		ModerateIntens:     7,
		HighIntensity:      8,
		HighMultiplier:     1.5,
		ElevatedIntensity:  6,
		ElevatedMultiplier: 1.2,
		ContextStep:        0.2,
		ConfidenceStep:     0.1,
		MaxReferrals:       5,
	}
}
