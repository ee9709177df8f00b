package contract

// RecommendRequest asks for ranked techniques for the user's current state.
// UserID is optional; when set, the user's session history personalizes the
// ranking and recently applied techniques are excluded.
type RecommendRequest struct {
	UserID              string   `json:"user_id,omitempty"`
	Emotions            []string `json:"emotions"`
	Intensity           int      `json:"intensity"`
	TimeAvailableMin    int      `json:"time_available_min"`
	PreferredApproaches []string `json:"preferred_approaches,omitempty"`
	Difficulty          string   `json:"difficulty,omitempty"`
}

// RecommendResponse returns the ranked shortlist, best match first. An empty
// list means no technique fits the constraints.
type RecommendResponse struct {
	Techniques []TechniquePayload `json:"techniques"`
}
