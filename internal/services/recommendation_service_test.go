package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essentia/internal/models/db_models"
	"essentia/internal/models/request_models"
	"essentia/internal/recommender"
	"essentia/pkg/utils"
)

type fakeCatalog struct {
	perfumes []recommender.Perfume
	err      error
}

func (f *fakeCatalog) LoadAll(ctx context.Context) ([]recommender.Perfume, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.perfumes, nil
}

func (f *fakeCatalog) ResolveByKey(key string) (recommender.Perfume, bool) {
	for _, p := range f.perfumes {
		if p.Key == key {
			return p, true
		}
	}
	return recommender.Perfume{}, false
}

func newRecommendationFixture(profile recommender.Profile, catalog []recommender.Perfume) (RecommendationServiceInterface, string) {
	row := &db_models.PerfumeProfile{}
	row.ID = uuid.New()

	profileRepo := &fakeProfileRepo{}
	questionRepo := &fakeQuestionRepo{byFlow: map[string][]db_models.Question{}}
	catalogSvc := &fakeCatalog{perfumes: catalog}
	profileSvc := NewProfileService(profileRepo, questionRepo, catalogSvc)

	// store through the repo directly so LoadDomainProfile can find it
	scores, _ := json.Marshal(profile.FamilyScores)
	metadata, _ := json.Marshal(profile.Metadata)
	row.ProfileType = string(profile.Type)
	row.FlowID = profile.FlowID
	row.PrimaryFamily = profile.PrimaryFamily
	row.GenderPreference = profile.GenderPreference
	row.FamilyScores = scores
	row.Metadata = metadata
	profileRepo.rows = append(profileRepo.rows, *row)

	return NewRecommendationService(profileSvc, catalogSvc), row.ID.String()
}

func TestRecommendInvalidLimit(t *testing.T) {
	svc, id := newRecommendationFixture(recommender.Profile{Type: recommender.ProfileTypePersonal}, nil)

	_, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{ProfileID: id, Limit: -1})
	assert.ErrorIs(t, err, utils.ErrInvalidLimit)

	_, err = svc.Recommend(context.Background(), request_models.RecommendationRequest{ProfileID: id, Limit: 101})
	assert.ErrorIs(t, err, utils.ErrInvalidLimit)
}

func TestRecommendUnknownProfile(t *testing.T) {
	svc, _ := newRecommendationFixture(recommender.Profile{Type: recommender.ProfileTypePersonal}, nil)

	_, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{ProfileID: uuid.New().String()})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestRecommendEnrichesItemsFromCatalog(t *testing.T) {
	profile := recommender.Profile{
		Type:          recommender.ProfileTypePersonal,
		FlowID:        "personal_A",
		PrimaryFamily: "woody",
		FamilyScores:  map[string]float64{"woody": 100},
	}
	catalog := []recommender.Perfume{
		{Key: "a", Name: "Alpha", Brand: "Chanel", Family: "woody", Popularity: 8},
	}

	svc, id := newRecommendationFixture(profile, catalog)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{ProfileID: id, Seed: 1})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Alpha", resp.Recommendations[0].Name)
	assert.Equal(t, "Chanel", resp.Recommendations[0].Brand)
	assert.NotEmpty(t, resp.Recommendations[0].Reason)
}

func TestRecommendGiftInvalidFlow(t *testing.T) {
	profile := recommender.Profile{Type: recommender.ProfileTypeGift, FlowID: "personal_C"}
	svc, id := newRecommendationFixture(profile, nil)

	_, err := svc.RecommendGift(context.Background(), request_models.GiftRecommendationRequest{ProfileID: id})
	assert.ErrorIs(t, err, utils.ErrInvalidFlow)
}

func TestRecommendGiftFlowOverride(t *testing.T) {
	profile := recommender.Profile{
		Type:             recommender.ProfileTypeGift,
		FlowID:           "gift_A",
		GenderPreference: "male",
	}
	catalog := []recommender.Perfume{
		{Key: "m", Name: "Masc", Gender: "hombre", Price: "low", Popularity: 8},
		{Key: "f", Name: "Fem", Gender: "mujer", Price: "low", Popularity: 9},
	}

	svc, id := newRecommendationFixture(profile, catalog)

	resp, err := svc.RecommendGift(context.Background(), request_models.GiftRecommendationRequest{ProfileID: id, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, "gift_A", resp.FlowID)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "m", resp.Recommendations[0].PerfumeKey)
}
