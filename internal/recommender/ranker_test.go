package recommender

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankerCatalog() []Perfume {
	var catalog []Perfume
	families := []string{"woody", "citrus", "floral", "oriental"}
	for i := 0; i < 40; i++ {
		catalog = append(catalog, Perfume{
			Key:        fmt.Sprintf("p%02d", i),
			Name:       fmt.Sprintf("Perfume %d", i),
			Family:     families[i%len(families)],
			Popularity: float64(i % 10),
		})
	}
	return catalog
}

func TestRecommendDefaultLimit(t *testing.T) {
	r := NewRecommender(nil, 1)
	recs := r.Recommend(personalProfile(), rankerCatalog(), 0)
	assert.LessOrEqual(t, len(recs), DefaultLimit)
	assert.NotEmpty(t, recs)
}

func TestRecommendExcludesZeroScores(t *testing.T) {
	r := NewRecommender(nil, 1)
	profile := personalProfile()
	profile.FamilyScores = map[string]float64{"leather": 100}
	profile.PrimaryFamily = "leather"

	catalog := []Perfume{{Key: "x", Family: "musk"}}
	recs := r.Recommend(profile, catalog, 5)
	assert.Empty(t, recs)
}

func TestRecommendHonorsBrandFilter(t *testing.T) {
	r := NewRecommender(nil, 1)
	profile := personalProfile()
	profile.Metadata.AllowedBrands = []string{"Chanel"}

	catalog := []Perfume{
		{Key: "a", Brand: "Chanel", Family: "woody"},
		{Key: "b", Brand: "Dior", Family: "woody"},
	}

	recs := r.Recommend(profile, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].PerfumeKey)
}

func TestRecommendReproducibleWithSameSeed(t *testing.T) {
	catalog := rankerCatalog()
	profile := personalProfile()

	first := NewRecommender(nil, 42).Recommend(profile, catalog, 10)
	second := NewRecommender(nil, 42).Recommend(profile, catalog, 10)
	require.Equal(t, first, second)
}

func TestRecommendBandOrderingIsMonotonic(t *testing.T) {
	catalog := rankerCatalog()
	profile := personalProfile()

	recs := NewRecommender(nil, 7).Recommend(profile, catalog, 10)
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, scoreBand(recs[i-1].Score), scoreBand(recs[i].Score))
	}
}

func TestRecommendScoresWithinBounds(t *testing.T) {
	recs := NewRecommender(nil, 1).Recommend(personalProfile(), rankerCatalog(), 20)
	for _, rec := range recs {
		assert.Greater(t, rec.Score, 0.0)
		assert.LessOrEqual(t, rec.Score, 100.0)
		assert.NotEmpty(t, rec.Reason)
		assert.Contains(t, []string{"high", "medium", "low"}, rec.Confidence)
	}
}

func TestRecommendDiversityMixesFamilies(t *testing.T) {
	profile := personalProfile()
	profile.Subfamilies = []string{"citrus"}
	profile.FamilyScores = map[string]float64{
		"woody":  100,
		"citrus": 80,
		"floral": 40,
	}

	recs := NewRecommender(nil, 3).Recommend(profile, rankerCatalog(), 10)
	require.NotEmpty(t, recs)

	families := make(map[string]int)
	for _, rec := range recs {
		for _, p := range rankerCatalog() {
			if p.Key == rec.PerfumeKey {
				families[p.Family]++
			}
		}
	}
	assert.Greater(t, len(families), 1, "expected more than one family in the mix")
}

func TestRecommendGiftAppliesStrategy(t *testing.T) {
	profile := giftProfile()
	profile.GenderPreference = "male"

	catalog := []Perfume{
		{Key: "m", Gender: "hombre", Price: "low", Popularity: 8},
		{Key: "f", Gender: "mujer", Price: "low", Popularity: 9},
	}

	recs := NewRecommender(nil, 1).RecommendGift(GiftFlowA, profile, catalog, 10)
	require.Len(t, recs, 1)
	assert.Equal(t, "m", recs[0].PerfumeKey)
}

func TestRecommendGiftTruncatesToLimit(t *testing.T) {
	profile := giftProfile()
	recs := NewRecommender(nil, 1).RecommendGift(GiftFlowB3, profile, rankerCatalog(), 3)
	assert.LessOrEqual(t, len(recs), 3)
}

func TestConfidenceBands(t *testing.T) {
	assert.Equal(t, "high", confidenceBand(70))
	assert.Equal(t, "high", confidenceBand(95))
	assert.Equal(t, "medium", confidenceBand(40))
	assert.Equal(t, "medium", confidenceBand(69.9))
	assert.Equal(t, "low", confidenceBand(39.9))
	assert.Equal(t, "low", confidenceBand(0))
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, 85.0, scoreBand(84))
	assert.Equal(t, 85.0, scoreBand(86))
	assert.Equal(t, 80.0, scoreBand(82.4))
	assert.Equal(t, 0.0, scoreBand(2.4))
}
