package contract

// AssessRequest asks for a risk assessment of a single user message.
type AssessRequest struct {
	Message   string           `json:"message"`
	Intensity int              `json:"intensity"`
	History   []MessagePayload `json:"history,omitempty"`
}

// AssessResponse carries the assessment plus the composed crisis handling.
type AssessResponse struct {
	Assessment      AssessmentPayload `json:"assessment"`
	IsImmediate     bool              `json:"is_immediate"`
	ResponseText    string            `json:"response_text"`
	FollowUpActions []string          `json:"follow_up_actions,omitempty"`
}
