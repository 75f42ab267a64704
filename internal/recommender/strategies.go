package recommender

import (
	"fmt"
	"time"
)

// personalityFamilies maps recipient personality traits onto the families
// that suit them. Spanish keys are kept because questionnaire data uses
// them.
var personalityFamilies = map[string][]string{
	"elegant":       {"woody", "oriental"},
	"elegante":      {"woody", "oriental"},
	"sporty":        {"fresh", "aquatic"},
	"deportivo":     {"fresh", "aquatic"},
	"romantic":      {"floral", "gourmand"},
	"romantico":     {"floral", "gourmand"},
	"sophisticated": {"oriental", "woody"},
	"sofisticado":   {"oriental", "woody"},
	"youthful":      {"fresh", "citrus"},
	"juvenil":       {"fresh", "citrus"},
	"classic":       {"woody", "floral"},
	"clasico":       {"woody", "floral"},
}

const recentYearWindow = 5

// GiftScorer dispatches gift sub-flows to their additive-point strategies.
// Point scales are self-contained per strategy and are not normalized
// against each other.
type GiftScorer struct {
	resolver ReferenceResolver
	now      func() time.Time
}

func NewGiftScorer(resolver ReferenceResolver, now func() time.Time) *GiftScorer {
	if now == nil {
		now = time.Now
	}
	return &GiftScorer{resolver: resolver, now: now}
}

// Score returns the strategy score for one item; include=false excludes the
// item from the results entirely (hard filters).
func (g *GiftScorer) Score(flow GiftFlow, profile Profile, p Perfume) (float64, []MatchFactor, bool) {
	switch flow {
	case GiftFlowA, GiftFlowB4:
		return g.scoreLowKnowledge(profile, p)
	case GiftFlowB1:
		return g.scoreByBrand(profile, p)
	case GiftFlowB2:
		return g.scoreByReference(profile, p)
	case GiftFlowB3:
		return g.scoreByAroma(profile, p)
	default:
		return g.scoreGeneric(p)
	}
}

// scoreLowKnowledge covers flow A (and B4, which delegates here): the asker
// knows little about the recipient, so gender, personality, price and
// popularity carry the score.
func (g *GiftScorer) scoreLowKnowledge(profile Profile, p Perfume) (float64, []MatchFactor, bool) {
	var score float64
	var factors []MatchFactor

	if pref := profile.GenderPreference; pref != "" && pref != "any" {
		if !GenderMatches(p.Gender, pref) {
			return 0, nil, false
		}
		score += 30
		factors = append(factors, MatchFactor{
			Label:       "Gender",
			Description: fmt.Sprintf("%s fragrance", p.Gender),
			Weight:      0.3,
		})
	}

	if trait, ok := matchingPersonality(profile.Metadata.PersonalityTraits, p.Family); ok {
		score += 25
		factors = append(factors, MatchFactor{
			Label:       "Personality",
			Description: fmt.Sprintf("suits a %s style", trait),
			Weight:      0.25,
		})
	}

	if isAccessiblePrice(p.Price) {
		score += 20
		factors = append(factors, MatchFactor{
			Label:       "Price",
			Description: "great value for a gift",
			Weight:      0.2,
		})
	}

	if p.Popularity >= 7 {
		score += 15
		factors = append(factors, MatchFactor{
			Label:       "Popularity",
			Description: fmt.Sprintf("highly rated (%.1f/10)", p.Popularity),
			Weight:      0.15,
		})
	}

	if g.isRecent(p.Year) {
		score += 10
		factors = append(factors, MatchFactor{
			Label:       "Modern",
			Description: fmt.Sprintf("recent release (%d)", p.Year),
			Weight:      0.1,
		})
	}

	return score, factors, true
}

// scoreByBrand covers flow B1: only items from the asker's selected brands
// survive.
func (g *GiftScorer) scoreByBrand(profile Profile, p Perfume) (float64, []MatchFactor, bool) {
	brands := profile.Metadata.AllowedBrands
	if len(brands) == 0 {
		score, factors, _ := g.scoreGeneric(p)
		return score, factors, true
	}

	if !containsTerm(brands, p.Brand) {
		return 0, nil, false
	}

	score := 50.0
	factors := []MatchFactor{{
		Label:       "Brand",
		Description: p.Brand,
		Weight:      0.5,
	}}

	score += p.Popularity * 3
	if p.Popularity > 7 {
		factors = append(factors, MatchFactor{
			Label:       "Popularity",
			Description: fmt.Sprintf("very popular (%.1f/10)", p.Popularity),
			Weight:      0.3,
		})
	}

	if isAccessiblePrice(p.Price) {
		score += 20
		factors = append(factors, MatchFactor{
			Label:       "Price",
			Description: "accessible price",
			Weight:      0.2,
		})
	}

	return score, factors, true
}

// scoreByReference covers flow B2: similarity to the reference perfumes the
// asker named, measured by note overlap (Jaccard) plus shared taxonomy.
// Without resolvable references it falls back to the aroma strategy.
func (g *GiftScorer) scoreByReference(profile Profile, p Perfume) (float64, []MatchFactor, bool) {
	references := g.resolveReferences(profile.Metadata.ReferencePerfumes)
	if len(references) == 0 {
		return g.scoreByAroma(profile, p)
	}

	// Never recommend the reference itself.
	for _, ref := range references {
		if NormalizeTerm(ref.Key) == NormalizeTerm(p.Key) {
			return 0, nil, false
		}
	}

	var best float64
	var bestRef Perfume
	for _, ref := range references {
		if sim := jaccard(ref.AllNotes(), p.AllNotes()); sim > best {
			best = sim
			bestRef = ref
		}
	}
	if best == 0 {
		bestRef = references[0]
	}

	var score float64
	var factors []MatchFactor

	if best > 0 {
		score += best * 40
		factors = append(factors, MatchFactor{
			Label:       "Similarity",
			Description: fmt.Sprintf("shares notes with %s", bestRef.Name),
			Weight:      0.4 * best,
		})
	}

	if NormalizeTerm(p.Family) == NormalizeTerm(bestRef.Family) {
		score += 20
		factors = append(factors, MatchFactor{
			Label:       "Family",
			Description: fmt.Sprintf("same %s family", p.Family),
			Weight:      0.2,
		})
	}

	if shared := overlapCount(bestRef.Subfamilies, p.Subfamilies); shared > 0 {
		score += float64(shared) * 10
		factors = append(factors, MatchFactor{
			Label:       "Subfamilies",
			Description: fmt.Sprintf("%d shared facets", shared),
			Weight:      0.1 * float64(shared),
		})
	}

	score += p.Popularity * 2

	return score, factors, true
}

// scoreByAroma covers flow B3: the asker picked aroma families directly.
func (g *GiftScorer) scoreByAroma(profile Profile, p Perfume) (float64, []MatchFactor, bool) {
	aromas := selectedFamilies(profile)
	if len(aromas) == 0 {
		score, factors, _ := g.scoreGeneric(p)
		return score, factors, true
	}

	var score float64
	var factors []MatchFactor

	if containsTerm(aromas, p.Family) {
		score += 40
		factors = append(factors, MatchFactor{
			Label:       "Family",
			Description: p.Family,
			Weight:      0.4,
		})
	}

	if matching := overlapCount(aromas, p.Subfamilies); matching > 0 {
		score += float64(matching) * 10
		factors = append(factors, MatchFactor{
			Label:       "Subfamilies",
			Description: fmt.Sprintf("%d matching facets", matching),
			Weight:      0.3,
		})
	}

	score += p.Popularity * 2

	if isAccessiblePrice(p.Price) {
		score += 10
		factors = append(factors, MatchFactor{
			Label:       "Price",
			Description: "accessible price",
			Weight:      0.1,
		})
	}

	return score, factors, true
}

// scoreGeneric is the fallback whenever a flow's expected signal is absent.
func (g *GiftScorer) scoreGeneric(p Perfume) (float64, []MatchFactor, bool) {
	var score float64
	var factors []MatchFactor

	if p.Popularity > 0 {
		score += p.Popularity * 5
		factors = append(factors, MatchFactor{
			Label:       "Popularity",
			Description: fmt.Sprintf("rated %.1f/10", p.Popularity),
			Weight:      0.5,
		})
	}

	if isAccessiblePrice(p.Price) {
		score += 20
		factors = append(factors, MatchFactor{
			Label:       "Price",
			Description: "great value",
			Weight:      0.2,
		})
	}

	if len(p.Subfamilies) >= 2 {
		score += 15
		factors = append(factors, MatchFactor{
			Label:       "Versatility",
			Description: "versatile fragrance with multiple facets",
			Weight:      0.15,
		})
	}

	if g.isRecent(p.Year) {
		score += 15
		factors = append(factors, MatchFactor{
			Label:       "Modern",
			Description: fmt.Sprintf("recent release (%d)", p.Year),
			Weight:      0.15,
		})
	}

	return score, factors, true
}

func (g *GiftScorer) isRecent(year int) bool {
	return year > 0 && year >= g.now().Year()-recentYearWindow
}

func (g *GiftScorer) resolveReferences(keys []string) []Perfume {
	if g.resolver == nil {
		return nil
	}
	var out []Perfume
	for _, key := range keys {
		if p, ok := g.resolver.ResolveByKey(key); ok {
			out = append(out, p)
		}
	}
	return out
}

func matchingPersonality(traits []string, family string) (string, bool) {
	for _, trait := range traits {
		families, ok := personalityFamilies[NormalizeTerm(trait)]
		if !ok {
			continue
		}
		if containsTerm(families, family) {
			return trait, true
		}
	}
	return "", false
}

// selectedFamilies returns the families the asker actually picked, i.e.
// every family holding a non-zero score, strongest first.
func selectedFamilies(profile Profile) []string {
	var out []string
	for _, fs := range sortedFamilyScores(profile.FamilyScores) {
		if fs.score > 0 {
			out = append(out, fs.family)
		}
	}
	return out
}

func containsTerm(list []string, value string) bool {
	target := NormalizeTerm(value)
	for _, v := range list {
		if NormalizeTerm(v) == target {
			return true
		}
	}
	return false
}

// jaccard measures set similarity of two note lists, case-insensitively.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[NormalizeTerm(v)] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[NormalizeTerm(v)] = struct{}{}
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
