package response_models

type ProfileResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	ProfileType        string             `json:"profile_type"`
	FlowID             string             `json:"flow_id"`
	ExperienceLevel    string             `json:"experience_level"`
	PrimaryFamily      string             `json:"primary_family"`
	Subfamilies        []string           `json:"subfamilies"`
	FamilyScores       map[string]float64 `json:"family_scores"`
	GenderPreference   string             `json:"gender_preference"`
	ConfidenceScore    float64            `json:"confidence_score"`
	AnswerCompleteness float64            `json:"answer_completeness"`
	SkippedAnswers     int                `json:"skipped_answers"`
	OrderIndex         int                `json:"order_index"`
	CreatedAt          int64              `json:"created_at"`
}

type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int               `json:"total"`
}
