package response_models

type MatchFactorResponse struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

type RecommendationItem struct {
	PerfumeKey   string                `json:"perfume_key"`
	Name         string                `json:"name"`
	Brand        string                `json:"brand"`
	Family       string                `json:"family"`
	Score        float64               `json:"score"`
	Reason       string                `json:"reason"`
	Confidence   string                `json:"confidence"` // "high" | "medium" | "low"
	MatchFactors []MatchFactorResponse `json:"match_factors,omitempty"`
}

type RecommendationResponse struct {
	ProfileID       string               `json:"profile_id"`
	FlowID          string               `json:"flow_id,omitempty"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Total           int                  `json:"total"`
}
