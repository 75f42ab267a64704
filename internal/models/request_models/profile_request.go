package request_models

type AnswerInput struct {
	QuestionID string   `json:"question_id" binding:"required"`
	OptionIDs  []string `json:"option_ids,omitempty"`
	FreeText   string   `json:"free_text,omitempty"`
}

type CreateProfileRequest struct {
	Name        string        `json:"name"`
	ProfileType string        `json:"profile_type" binding:"required"` // "personal" | "gift"
	FlowID      string        `json:"flow_id" binding:"required"`
	Answers     []AnswerInput `json:"answers" binding:"required"`
}

type ReorderProfilesRequest struct {
	ProfileIDs []string `json:"profile_ids" binding:"required"`
}
