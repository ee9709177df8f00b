package contract

// TriageRequest runs the full per-message pipeline: assess risk first, then
// recommend techniques only when the message is not an immediate crisis.
type TriageRequest struct {
	UserID           string           `json:"user_id"`
	Message          string           `json:"message"`
	Intensity        int              `json:"intensity"`
	Emotions         []string         `json:"emotions,omitempty"`
	TimeAvailableMin int              `json:"time_available_min,omitempty"`
	History          []MessagePayload `json:"history,omitempty"`
}

// TriageResponse is the pipeline outcome. When IsImmediate is true,
// Techniques is always empty and ResponseText carries the crisis response.
type TriageResponse struct {
	Assessment      AssessmentPayload  `json:"assessment"`
	IsImmediate     bool               `json:"is_immediate"`
	ResponseText    string             `json:"response_text"`
	Techniques      []TechniquePayload `json:"techniques,omitempty"`
	FollowUpActions []string           `json:"follow_up_actions,omitempty"`
}
