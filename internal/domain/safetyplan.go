package domain

import "time"

// SupportContact is a personal contact listed on a safety plan.
type SupportContact struct {
	Name         string
	Relationship string
	Phone        string
	Available    string
}

// SafetyPlan is a per-user crisis preparedness plan. One plan per user;
// updates replace fields in place and bump LastUpdated.
type SafetyPlan struct {
	UserID               string
	WarningSignals       []string
	CopingStrategies     []string
	SupportContacts      []SupportContact
	ProfessionalContacts []ProfessionalResource
	EnvironmentalSafety  []string
	ReasonsForLiving     []string
	CreatedAt            time.Time
	LastUpdated          time.Time
}
