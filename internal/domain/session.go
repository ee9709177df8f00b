package domain

import "time"

// TechniqueFeedback is one user rating for a technique applied in a session.
// Rating is the 0-10 integer entered by the user; it is normalized to 0-1
// only at aggregation time.
type TechniqueFeedback struct {
	TechniqueID string
	Rating      int
	Notes       string
	CreatedAt   time.Time
}

// TherapeuticSession is one append-only ledger entry. AppliedTechniques and
// Feedback grow over the session's lifetime; existing entries are never
// mutated or removed.
type TherapeuticSession struct {
	ID                string
	UserID            string
	Issue             string
	EmotionalState    []EmotionCategory
	AppliedTechniques []string
	Feedback          []TechniqueFeedback
	StartedAt         time.Time
	CreatedAt         time.Time
}
