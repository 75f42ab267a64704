package recommender

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

const (
	// DefaultLimit is used when a caller asks for a non-positive number of
	// results.
	DefaultLimit = 10

	// scoreBandWidth groups near-equal scores into bands; ordering inside a
	// band is a seeded shuffle, ordering across bands is strictly by score.
	scoreBandWidth = 5.0

	primaryShare   = 0.60
	subfamilyShare = 0.25
)

// Recommender ranks catalog items against a profile. The seed makes
// in-band shuffling reproducible; two recommenders with the same seed
// produce identical output for identical input.
type Recommender struct {
	resolver ReferenceResolver
	seed     int64
	now      func() time.Time
}

func NewRecommender(resolver ReferenceResolver, seed int64) *Recommender {
	return &Recommender{resolver: resolver, seed: seed, now: time.Now}
}

type candidate struct {
	perfume Perfume
	score   float64
	factors []MatchFactor
}

// Recommend returns the top ranked items for a personal or gift profile.
// Items scoring zero never appear; fewer than limit results is normal on a
// small or heavily filtered catalog.
func (r *Recommender) Recommend(profile Profile, catalog []Perfume, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var candidates []candidate
	for _, p := range catalog {
		if !brandAllowed(p, profile.Metadata.AllowedBrands) {
			continue
		}
		score, factors := ScorePerfume(p, profile)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, candidate{perfume: p, score: score, factors: factors})
	}

	selected := selectDiverse(candidates, profile, limit)
	r.orderBanded(selected)
	return toRecommendations(selected)
}

// RecommendGift ranks items with the gift sub-flow strategy instead of the
// weighted profile scorer.
func (r *Recommender) RecommendGift(flow GiftFlow, profile Profile, catalog []Perfume, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	scorer := NewGiftScorer(r.resolver, r.now)

	var candidates []candidate
	for _, p := range catalog {
		score, factors, include := scorer.Score(flow, profile, p)
		if !include || score <= 0 {
			continue
		}
		candidates = append(candidates, candidate{perfume: p, score: score, factors: factors})
	}

	sortByScore(candidates)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	r.orderBanded(candidates)
	return toRecommendations(candidates)
}

func brandAllowed(p Perfume, brands []string) bool {
	if len(brands) == 0 {
		return true
	}
	return containsTerm(brands, p.Brand)
}

// selectDiverse fills the result with roughly 60% items from the primary
// family, 25% from the subfamilies and the rest from elsewhere, so the list
// is not a monoculture. Short buckets are topped up with the best remaining
// candidates regardless of family.
func selectDiverse(candidates []candidate, profile Profile, limit int) []candidate {
	sortByScore(candidates)
	if len(candidates) <= limit {
		return candidates
	}

	primary := NormalizeTerm(profile.PrimaryFamily)
	subs := make(map[string]struct{}, len(profile.Subfamilies))
	for _, s := range profile.Subfamilies {
		subs[NormalizeTerm(s)] = struct{}{}
	}

	primaryWant := int(math.Round(float64(limit) * primaryShare))
	subWant := int(math.Round(float64(limit) * subfamilyShare))

	taken := make(map[string]struct{}, limit)
	var selected []candidate
	take := func(c candidate) {
		selected = append(selected, c)
		taken[c.perfume.Key] = struct{}{}
	}

	for _, c := range candidates {
		if len(selected) >= primaryWant {
			break
		}
		if NormalizeTerm(c.perfume.Family) == primary {
			take(c)
		}
	}
	subTaken := 0
	for _, c := range candidates {
		if subTaken >= subWant {
			break
		}
		if _, done := taken[c.perfume.Key]; done {
			continue
		}
		if _, ok := subs[NormalizeTerm(c.perfume.Family)]; ok {
			take(c)
			subTaken++
		}
	}
	for _, c := range candidates {
		if len(selected) >= limit {
			break
		}
		if _, done := taken[c.perfume.Key]; done {
			continue
		}
		family := NormalizeTerm(c.perfume.Family)
		if family == primary {
			continue
		}
		if _, ok := subs[family]; ok {
			continue
		}
		take(c)
	}

	// Top up from the best remaining when the buckets ran short.
	for _, c := range candidates {
		if len(selected) >= limit {
			break
		}
		if _, done := taken[c.perfume.Key]; done {
			continue
		}
		take(c)
	}

	return selected
}

// orderBanded sorts candidates by descending score band and shuffles within
// each band. An item in a higher band always precedes one in a lower band.
func (r *Recommender) orderBanded(candidates []candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		bi, bj := scoreBand(candidates[i].score), scoreBand(candidates[j].score)
		if bi != bj {
			return bi > bj
		}
		return candidates[i].perfume.Key < candidates[j].perfume.Key
	})

	rng := rand.New(rand.NewSource(r.seed))
	start := 0
	for start < len(candidates) {
		end := start + 1
		band := scoreBand(candidates[start].score)
		for end < len(candidates) && scoreBand(candidates[end].score) == band {
			end++
		}
		segment := candidates[start:end]
		rng.Shuffle(len(segment), func(i, j int) {
			segment[i], segment[j] = segment[j], segment[i]
		})
		start = end
	}
}

func scoreBand(score float64) float64 {
	return math.Round(score/scoreBandWidth) * scoreBandWidth
}

func sortByScore(candidates []candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].perfume.Key < candidates[j].perfume.Key
	})
}

func toRecommendations(candidates []candidate) []Recommendation {
	out := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Recommendation{
			PerfumeKey:   c.perfume.Key,
			Score:        c.score,
			Reason:       reasonFor(c.factors),
			Confidence:   confidenceBand(c.score),
			MatchFactors: c.factors,
		})
	}
	return out
}

// reasonFor picks the explanation of the strongest factor.
func reasonFor(factors []MatchFactor) string {
	if len(factors) == 0 {
		return "matches your preference profile"
	}
	best := factors[0]
	for _, f := range factors[1:] {
		if f.Weight > best.Weight {
			best = f
		}
	}
	return best.Description
}

func confidenceBand(score float64) string {
	switch {
	case score >= 70:
		return "high"
	case score >= 40:
		return "medium"
	default:
		return "low"
	}
}
