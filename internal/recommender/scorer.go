package recommender

import "fmt"

var intensityLevels = map[string]int{
	"low":       1,
	"medium":    2,
	"high":      3,
	"very_high": 4,
	"very high": 4,
	"veryhigh":  4,
}

// ScorePerfume computes a 0-100 match between one catalog item and a
// profile using the profile type's weight table, returning the factors that
// explain the score. Scoring the same pair twice yields the same result.
func ScorePerfume(p Perfume, profile Profile) (float64, []MatchFactor) {
	weights := WeightsFor(profile.Type)

	// Hard disqualifiers first: intensity ceiling and required notes.
	if max := profile.Metadata.IntensityMax; max != "" && !withinIntensityLimit(p, max) {
		return 0, nil
	}
	if required := profile.Metadata.MustContainNotes; len(required) > 0 && !containsAllNotes(p, required) {
		return 0, nil
	}

	var score float64
	var factors []MatchFactor

	familyScore := familyMatch(p, profile)
	score += familyScore * weights.Family
	if familyScore > 0 {
		factors = append(factors, MatchFactor{
			Label:       "Family",
			Description: fmt.Sprintf("matches your %s profile", profile.PrimaryFamily),
			Weight:      weights.Family,
		})
	}

	if notes := profile.Metadata.PreferredNotes; len(notes) > 0 {
		step := noteBonusStep(overlapCount(notes, p.AllNotes()))
		if step > 0 {
			score += step * weights.Notes * 100
			factors = append(factors, MatchFactor{
				Label:       "Notes",
				Description: "contains notes you picked",
				Weight:      weights.Notes * step,
			})
		}
	}

	if bonus := profile.Metadata.HeartNotesBonus; len(bonus) > 0 {
		step := phaseBonusStep(overlapCount(bonus, p.HeartNotes))
		if step > 0 {
			score += step * weights.Notes * 100
			factors = append(factors, MatchFactor{
				Label:       "Heart notes",
				Description: "heart phase carries your favorites",
				Weight:      weights.Notes * step,
			})
		}
	}
	if bonus := profile.Metadata.BaseNotesBonus; len(bonus) > 0 {
		step := phaseBonusStep(overlapCount(bonus, p.BaseNotes))
		if step > 0 {
			score += step * weights.Notes * 100
			factors = append(factors, MatchFactor{
				Label:       "Base notes",
				Description: "base phase carries your favorites",
				Weight:      weights.Notes * step,
			})
		}
	}

	if contextScore := contextMatch(p, profile.Metadata); contextScore > 0 {
		score += contextScore * weights.Context
		factors = append(factors, MatchFactor{
			Label:       "Context",
			Description: "fits your occasions and seasons",
			Weight:      weights.Context,
		})
	}

	if p.Popularity > 0 {
		score += (p.Popularity / 10.0) * weights.Popularity * 100
		factors = append(factors, MatchFactor{
			Label:       "Popularity",
			Description: fmt.Sprintf("rated %.1f/10", p.Popularity),
			Weight:      weights.Popularity,
		})
	}

	if profile.Type == ProfileTypeGift && isAccessiblePrice(p.Price) {
		score += weights.Price * 100
		factors = append(factors, MatchFactor{
			Label:       "Price",
			Description: "accessible price range",
			Weight:      weights.Price,
		})
	}

	// Penalties last, in order: avoided family, then the gift gender gate.
	if familyInList(p.Family, profile.Metadata.AvoidFamilies) {
		score *= 0.3
	}
	if profile.Type == ProfileTypeGift && !GenderMatches(p.Gender, profile.GenderPreference) {
		return 0, nil
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, factors
}

// familyMatch scores the olfactory fit 0-100: the item's main family is
// worth up to 40 points, each subfamily up to 10, plus 10 each for matching
// intensity and duration preferences.
func familyMatch(p Perfume, profile Profile) float64 {
	score := profileFamilyScore(profile, p.Family) / 100.0 * 40.0
	for _, sub := range p.Subfamilies {
		score += profileFamilyScore(profile, sub) / 100.0 * 10.0
	}
	if score > 100 {
		score = 100
	}

	if pref := profile.Metadata.IntensityPreference; pref != "" && NormalizeTerm(p.Intensity) == NormalizeTerm(pref) {
		score += 10
	}
	if pref := profile.Metadata.DurationPreference; pref != "" && NormalizeTerm(p.Duration) == NormalizeTerm(pref) {
		score += 10
	}

	if score > 100 {
		return 100
	}
	return score
}

// contextMatch averages the populated context axes; an axis scores 100 when
// any overlap exists. Axes absent on the profile are excluded, not
// penalized.
func contextMatch(p Perfume, meta ProfileMetadata) float64 {
	var score, checks float64

	if len(meta.PreferredOccasions) > 0 {
		checks++
		if overlapCount(meta.PreferredOccasions, p.Occasions) > 0 {
			score++
		}
	}
	if len(meta.PreferredSeasons) > 0 {
		checks++
		if overlapCount(meta.PreferredSeasons, p.Seasons) > 0 {
			score++
		}
	}

	if checks == 0 {
		return 0
	}
	return score / checks * 100.0
}

func noteBonusStep(matches int) float64 {
	switch {
	case matches >= 3:
		return 1.0
	case matches == 2:
		return 0.8
	case matches == 1:
		return 0.5
	default:
		return 0
	}
}

func phaseBonusStep(matches int) float64 {
	switch {
	case matches >= 3:
		return 1.0
	case matches == 2:
		return 0.6
	case matches == 1:
		return 0.3
	default:
		return 0
	}
}

func withinIntensityLimit(p Perfume, maxIntensity string) bool {
	level, ok := intensityLevels[NormalizeTerm(p.Intensity)]
	if !ok {
		return true
	}
	limit, ok := intensityLevels[NormalizeTerm(maxIntensity)]
	if !ok {
		return true
	}
	return level <= limit
}

func containsAllNotes(p Perfume, required []string) bool {
	have := make(map[string]struct{})
	for _, note := range p.AllNotes() {
		have[NormalizeTerm(note)] = struct{}{}
	}
	for _, note := range required {
		if _, ok := have[NormalizeTerm(note)]; !ok {
			return false
		}
	}
	return true
}

func profileFamilyScore(profile Profile, family string) float64 {
	return profile.FamilyScores[NormalizeTerm(family)]
}

func familyInList(family string, list []string) bool {
	target := NormalizeTerm(family)
	for _, f := range list {
		if NormalizeTerm(f) == target {
			return true
		}
	}
	return false
}

func overlapCount(wanted, have []string) int {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[NormalizeTerm(h)] = struct{}{}
	}
	count := 0
	for _, w := range wanted {
		if _, ok := set[NormalizeTerm(w)]; ok {
			count++
		}
	}
	return count
}

func isAccessiblePrice(price string) bool {
	switch NormalizeTerm(price) {
	case "low", "medium":
		return true
	}
	return false
}
