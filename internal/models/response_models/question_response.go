package response_models

type QuestionOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

type QuestionResponse struct {
	ID           string                   `json:"id"`
	Key          string                   `json:"key"`
	Category     string                   `json:"category"`
	Text         string                   `json:"text"`
	QuestionType string                   `json:"question_type"`
	DataSource   string                   `json:"data_source,omitempty"`
	MultiSelect  bool                     `json:"multi_select"`
	OrderIndex   int                      `json:"order_index"`
	Options      []QuestionOptionResponse `json:"options"`
}

type QuestionSetResponse struct {
	FlowID    string             `json:"flow_id"`
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}
