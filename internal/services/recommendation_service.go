package services

import (
	"context"
	"time"

	"essentia/internal/models/request_models"
	"essentia/internal/models/response_models"
	"essentia/internal/recommender"
	"essentia/pkg/utils"
)

const maxRecommendationLimit = 100

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendationRequest) (response_models.RecommendationResponse, error)
	RecommendGift(ctx context.Context, req request_models.GiftRecommendationRequest) (response_models.RecommendationResponse, error)
}

type RecommendationService struct {
	profileService ProfileServiceInterface
	catalogService CatalogServiceInterface
}

func NewRecommendationService(
	profileService ProfileServiceInterface,
	catalogService CatalogServiceInterface,
) RecommendationServiceInterface {
	return &RecommendationService{
		profileService: profileService,
		catalogService: catalogService,
	}
}

func (s *RecommendationService) Recommend(ctx context.Context, req request_models.RecommendationRequest) (response_models.RecommendationResponse, error) {
	if req.Limit < 0 || req.Limit > maxRecommendationLimit {
		return response_models.RecommendationResponse{}, utils.ErrInvalidLimit
	}

	profile, row, err := s.profileService.LoadDomainProfile(ctx, req.ProfileID)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	catalog, err := s.catalogService.LoadAll(ctx)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	ranker := recommender.NewRecommender(s.catalogService, effectiveSeed(req.Seed))
	recommendations := ranker.Recommend(profile, catalog, req.Limit)

	return response_models.RecommendationResponse{
		ProfileID:       row.ID.String(),
		Recommendations: s.toItems(recommendations),
		Total:           len(recommendations),
	}, nil
}

func (s *RecommendationService) RecommendGift(ctx context.Context, req request_models.GiftRecommendationRequest) (response_models.RecommendationResponse, error) {
	if req.Limit < 0 || req.Limit > maxRecommendationLimit {
		return response_models.RecommendationResponse{}, utils.ErrInvalidLimit
	}

	profile, row, err := s.profileService.LoadDomainProfile(ctx, req.ProfileID)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	flowID := req.FlowID
	if flowID == "" {
		flowID = profile.FlowID
	}
	flow, ok := recommender.ParseGiftFlow(flowID)
	if !ok {
		return response_models.RecommendationResponse{}, utils.ErrInvalidFlow
	}

	catalog, err := s.catalogService.LoadAll(ctx)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	ranker := recommender.NewRecommender(s.catalogService, effectiveSeed(req.Seed))
	recommendations := ranker.RecommendGift(flow, profile, catalog, req.Limit)

	return response_models.RecommendationResponse{
		ProfileID:       row.ID.String(),
		FlowID:          string(flow),
		Recommendations: s.toItems(recommendations),
		Total:           len(recommendations),
	}, nil
}

func effectiveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func (s *RecommendationService) toItems(recommendations []recommender.Recommendation) []response_models.RecommendationItem {
	items := make([]response_models.RecommendationItem, 0, len(recommendations))
	for _, rec := range recommendations {
		item := response_models.RecommendationItem{
			PerfumeKey: rec.PerfumeKey,
			Score:      rec.Score,
			Reason:     rec.Reason,
			Confidence: rec.Confidence,
		}
		if p, ok := s.catalogService.ResolveByKey(rec.PerfumeKey); ok {
			item.Name = p.Name
			item.Brand = p.Brand
			item.Family = p.Family
		}
		for _, f := range rec.MatchFactors {
			item.MatchFactors = append(item.MatchFactors, response_models.MatchFactorResponse{
				Label:       f.Label,
				Description: f.Description,
				Weight:      f.Weight,
			})
		}
		items = append(items, item)
	}
	return items
}
