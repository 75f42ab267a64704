package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personalProfile() Profile {
	return Profile{
		Type:          ProfileTypePersonal,
		PrimaryFamily: "woody",
		FamilyScores: map[string]float64{
			"woody":  100,
			"citrus": 50,
		},
		GenderPreference: "male",
	}
}

func TestScorePerfumeFamilyOnly(t *testing.T) {
	p := Perfume{Key: "x", Family: "woody"}
	score, factors := ScorePerfume(p, personalProfile())

	// family match 40 at weight 0.60
	assert.InDelta(t, 24.0, score, 1e-9)
	require.Len(t, factors, 1)
	assert.Equal(t, "Family", factors[0].Label)
}

func TestScorePerfumeSubfamiliesAndPreferences(t *testing.T) {
	profile := personalProfile()
	profile.Metadata.IntensityPreference = "high"
	profile.Metadata.DurationPreference = "long"

	p := Perfume{
		Key:         "x",
		Family:      "woody",
		Subfamilies: []string{"citrus"},
		Intensity:   "High",
		Duration:    "Long",
	}

	score, _ := ScorePerfume(p, profile)
	// 40 + 5 + 10 + 10 = 65 family points at weight 0.60
	assert.InDelta(t, 39.0, score, 1e-9)
}

func TestScorePerfumeDeterministic(t *testing.T) {
	profile := personalProfile()
	p := Perfume{Key: "x", Family: "woody", Popularity: 8}

	first, _ := ScorePerfume(p, profile)
	second, _ := ScorePerfume(p, profile)
	assert.Equal(t, first, second)
}

func TestScorePerfumeBounds(t *testing.T) {
	profile := personalProfile()
	profile.Metadata.PreferredNotes = []string{"oud", "vanilla", "amber"}
	profile.Metadata.PreferredOccasions = []string{"evening"}
	profile.Metadata.PreferredSeasons = []string{"winter"}

	p := Perfume{
		Key:         "x",
		Family:      "woody",
		Subfamilies: []string{"citrus", "woody"},
		Popularity:  10,
		TopNotes:    []string{"oud", "vanilla", "amber"},
		Occasions:   []string{"evening"},
		Seasons:     []string{"winter"},
	}

	score, _ := ScorePerfume(p, profile)
	assert.LessOrEqual(t, score, 100.0)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestScorePerfumeIntensityCeilingDisqualifies(t *testing.T) {
	profile := personalProfile()
	profile.Metadata.IntensityMax = "medium"

	score, factors := ScorePerfume(Perfume{Key: "x", Family: "woody", Intensity: "high"}, profile)
	assert.Zero(t, score)
	assert.Empty(t, factors)

	score, _ = ScorePerfume(Perfume{Key: "x", Family: "woody", Intensity: "low"}, profile)
	assert.Greater(t, score, 0.0)
}

func TestScorePerfumeMustContainNotesDisqualifies(t *testing.T) {
	profile := personalProfile()
	profile.Metadata.MustContainNotes = []string{"oud"}

	score, _ := ScorePerfume(Perfume{Key: "x", Family: "woody", TopNotes: []string{"vanilla"}}, profile)
	assert.Zero(t, score)

	score, _ = ScorePerfume(Perfume{Key: "x", Family: "woody", BaseNotes: []string{"Oud"}}, profile)
	assert.Greater(t, score, 0.0)
}

func TestScorePerfumeAvoidFamilyPenalty(t *testing.T) {
	profile := personalProfile()
	base, _ := ScorePerfume(Perfume{Key: "x", Family: "woody"}, profile)

	profile.Metadata.AvoidFamilies = []string{"woody"}
	penalized, _ := ScorePerfume(Perfume{Key: "x", Family: "woody"}, profile)

	assert.InDelta(t, base*0.3, penalized, 1e-9)
}

func TestScorePerfumeGiftGenderGate(t *testing.T) {
	profile := personalProfile()
	profile.Type = ProfileTypeGift
	profile.GenderPreference = "female"

	score, _ := ScorePerfume(Perfume{Key: "x", Family: "woody", Gender: "hombre"}, profile)
	assert.Zero(t, score)

	score, _ = ScorePerfume(Perfume{Key: "x", Family: "woody", Gender: "unisex"}, profile)
	assert.Greater(t, score, 0.0)
}

func TestScorePerfumePersonalHasNoGenderGate(t *testing.T) {
	profile := personalProfile()
	profile.GenderPreference = "female"

	score, _ := ScorePerfume(Perfume{Key: "x", Family: "woody", Gender: "hombre"}, profile)
	assert.Greater(t, score, 0.0)
}

func TestScorePerfumeNoteBonusSteps(t *testing.T) {
	assert.Equal(t, 0.0, noteBonusStep(0))
	assert.Equal(t, 0.5, noteBonusStep(1))
	assert.Equal(t, 0.8, noteBonusStep(2))
	assert.Equal(t, 1.0, noteBonusStep(3))
	assert.Equal(t, 1.0, noteBonusStep(5))
}

func TestScorePerfumePhaseBonusSteps(t *testing.T) {
	assert.Equal(t, 0.0, phaseBonusStep(0))
	assert.Equal(t, 0.3, phaseBonusStep(1))
	assert.Equal(t, 0.6, phaseBonusStep(2))
	assert.Equal(t, 1.0, phaseBonusStep(3))
}

func TestScorePerfumeGiftWeightsShiftToPopularityAndPrice(t *testing.T) {
	personal := personalProfile()
	gift := personalProfile()
	gift.Type = ProfileTypeGift
	gift.GenderPreference = "any"

	p := Perfume{Key: "x", Family: "floral", Popularity: 10, Price: "low"}

	personalScore, _ := ScorePerfume(p, personal)
	giftScore, _ := ScorePerfume(p, gift)
	assert.Greater(t, giftScore, personalScore)
}
