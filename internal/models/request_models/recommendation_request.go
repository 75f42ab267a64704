package request_models

type RecommendationRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	Limit     int    `json:"limit,omitempty"` // defaults to 10
	Seed      int64  `json:"seed,omitempty"`  // fixes in-band ordering, 0 means random
}

type GiftRecommendationRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	FlowID    string `json:"flow_id,omitempty"` // overrides the profile's stored flow
	Limit     int    `json:"limit,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
}
