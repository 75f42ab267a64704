package recommender

import "sort"

// canonicalFamilyOrder fixes tie-breaking between equally scored families
// so that primary/subfamily selection never depends on map iteration order.
var canonicalFamilyOrder = []string{
	"citrus",
	"floral",
	"woody",
	"oriental",
	"fresh",
	"aquatic",
	"green",
	"gourmand",
	"fougere",
	"chypre",
	"aromatic",
	"spicy",
	"leather",
	"musk",
}

var canonicalFamilyRank = func() map[string]int {
	ranks := make(map[string]int, len(canonicalFamilyOrder))
	for i, f := range canonicalFamilyOrder {
		ranks[f] = i
	}
	return ranks
}()

func familyRank(family string) int {
	if r, ok := canonicalFamilyRank[family]; ok {
		return r
	}
	return len(canonicalFamilyOrder)
}

type familyScore struct {
	family string
	score  float64
}

// sortedFamilyScores orders families by descending score; ties fall back to
// canonical family order, then name.
func sortedFamilyScores(scores map[string]float64) []familyScore {
	out := make([]familyScore, 0, len(scores))
	for family, score := range scores {
		out = append(out, familyScore{family: family, score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		ri, rj := familyRank(out[i].family), familyRank(out[j].family)
		if ri != rj {
			return ri < rj
		}
		return out[i].family < out[j].family
	})
	return out
}
