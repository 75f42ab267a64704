package recommender

import (
	"log"
	"sort"
	"strings"
)

// Reference perfume contribution constants: a resolved reference adds
// referenceBasePoints × weight to its main family, decreasing shares to its
// subfamilies, and multiple references are damped so they cannot drown out
// the rest of the answers.
const (
	referenceBasePoints      = 10.0
	multiReferenceDamping    = 0.7
	manyReferenceExtraFactor = 0.8
)

var referenceSubfamilyShares = []float64{0.5, 0.35, 0.2}

// questionStrategy decides how an answered question contributes to the
// profile.
type questionStrategy int

const (
	strategyStandard questionStrategy = iota
	strategyPerfumeDatabase
	strategyNotesDatabase
	strategyBrandsDatabase
	strategyRouting
	strategyMetadataOnly
)

func determineStrategy(q Question) questionStrategy {
	if NormalizeTerm(q.QuestionType) == "routing" {
		return strategyRouting
	}

	switch NormalizeTerm(q.DataSource) {
	case "perfume_database", "perfumes":
		return strategyPerfumeDatabase
	case "notes_database", "notes":
		return strategyNotesDatabase
	case "brands_database", "brands":
		return strategyBrandsDatabase
	}

	qt := NormalizeTerm(q.QuestionType)
	if strings.Contains(qt, "autocomplete_perfume") {
		return strategyPerfumeDatabase
	}
	if strings.Contains(qt, "autocomplete_note") {
		return strategyNotesDatabase
	}
	if strings.Contains(qt, "autocomplete_brand") {
		return strategyBrandsDatabase
	}

	if effectiveWeight(q) == 0 {
		return strategyMetadataOnly
	}
	return strategyStandard
}

// effectiveWeight returns the explicit question weight, or infers one from
// the question semantics. First matching rule wins.
func effectiveWeight(q Question) int {
	if q.Weight != nil {
		return *q.Weight
	}

	semantics := NormalizeTerm(q.Key + " " + q.Category)

	for _, kw := range []string{"gender", "intensity", "concentration"} {
		if strings.Contains(semantics, kw) {
			return 0
		}
	}
	for _, kw := range []string{"preference", "structure"} {
		if strings.Contains(semantics, kw) {
			return 3
		}
	}
	for _, kw := range []string{"feeling", "personality", "discovery"} {
		if strings.Contains(semantics, kw) {
			return 2
		}
	}
	for _, kw := range []string{"time", "season", "occasion", "balance"} {
		if strings.Contains(semantics, kw) {
			return 1
		}
	}
	return 1
}

// processResult accumulates everything the answers yield before
// normalization.
type processResult struct {
	familyTotals    map[string]float64
	referenceTotals map[string]float64
	referenceKeys   []string
	meta            metadataAccumulator
	allowedBrands   []string
	answered        int
	skipped         int
}

func newProcessResult() *processResult {
	return &processResult{
		familyTotals:    map[string]float64{},
		referenceTotals: map[string]float64{},
	}
}

// processAnswers walks the answers in ascending question order so that
// last-write-wins metadata is deterministic, accumulating family points,
// metadata, brand filters and reference contributions. Malformed answer
// references are skipped and counted rather than raised.
func processAnswers(answers []Answer, questions []Question, resolver ReferenceResolver) *processResult {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ordered := make([]Answer, len(answers))
	copy(ordered, answers)
	sort.SliceStable(ordered, func(i, j int) bool {
		qi, iok := byID[ordered[i].QuestionID]
		qj, jok := byID[ordered[j].QuestionID]
		if !iok || !jok {
			return jok
		}
		return qi.OrderIndex < qj.OrderIndex
	})

	result := newProcessResult()

	for _, answer := range ordered {
		question, ok := byID[answer.QuestionID]
		if !ok {
			result.skipped++
			log.Printf("Skipping answer for unknown question %q", answer.QuestionID)
			continue
		}

		options := selectedOptions(question, answer, &result.skipped)
		if len(options) == 0 {
			continue
		}
		result.answered++

		strategy := determineStrategy(question)
		weight := effectiveWeight(question)

		for _, option := range options {
			switch strategy {
			case strategyStandard:
				addStandardContribution(result, option, weight)
			case strategyPerfumeDatabase:
				addReferenceContribution(result, option, weight, resolver)
			case strategyNotesDatabase:
				result.meta.preferredNotes = appendUnique(result.meta.preferredNotes, splitCSV(option.Value)...)
			case strategyBrandsDatabase:
				result.allowedBrands = appendUnique(result.allowedBrands, splitCSV(option.Value)...)
			case strategyRouting, strategyMetadataOnly:
				// metadata extraction below is the only effect
			}

			result.meta.extract(option)
		}
	}

	mergeReferenceContributions(result)
	applyAvoidPenalty(result)

	return result
}

// selectedOptions resolves the answer's option ids against the question,
// synthesizing an option from free text for autocomplete captures.
func selectedOptions(question Question, answer Answer, skipped *int) []Option {
	byID := make(map[string]Option, len(question.Options))
	for _, o := range question.Options {
		byID[o.ID] = o
	}

	var options []Option
	for _, id := range answer.OptionIDs {
		option, ok := byID[id]
		if !ok {
			*skipped++
			log.Printf("Skipping unknown option %q on question %q", id, question.ID)
			continue
		}
		if option.Value == "" && answer.FreeText != "" {
			option.Value = answer.FreeText
		}
		options = append(options, option)
	}

	if len(options) == 0 && answer.FreeText != "" {
		options = append(options, Option{Value: answer.FreeText})
	}
	return options
}

func addStandardContribution(result *processResult, option Option, weight int) {
	if weight <= 0 {
		return
	}
	for family, points := range option.Families {
		if isSpecialFamilyKey(family) {
			continue
		}
		result.familyTotals[NormalizeTerm(family)] += float64(points * weight)
	}
}

// addReferenceContribution analyzes reference perfumes by the families of
// the referenced catalog items: full base points for the main family, then
// decreasing shares for up to three subfamilies.
func addReferenceContribution(result *processResult, option Option, weight int, resolver ReferenceResolver) {
	if resolver == nil || weight <= 0 {
		return
	}
	for _, key := range splitCSV(option.Value) {
		perfume, ok := resolver.ResolveByKey(key)
		if !ok {
			log.Printf("Reference perfume %q not found in catalog", key)
			continue
		}
		result.referenceKeys = appendUnique(result.referenceKeys, perfume.Key)

		base := referenceBasePoints * float64(weight)
		result.referenceTotals[NormalizeTerm(perfume.Family)] += base
		for i, sub := range perfume.Subfamilies {
			if i >= len(referenceSubfamilyShares) {
				break
			}
			result.referenceTotals[NormalizeTerm(sub)] += base * referenceSubfamilyShares[i]
		}
	}
}

// mergeReferenceContributions folds reference totals into the family totals,
// damped when several references were given so they stay important without
// dominating.
func mergeReferenceContributions(result *processResult) {
	if len(result.referenceTotals) == 0 {
		return
	}
	factor := 1.0
	switch n := len(result.referenceKeys); {
	case n >= 3:
		factor = multiReferenceDamping * manyReferenceExtraFactor
	case n == 2:
		factor = multiReferenceDamping
	}
	for family, points := range result.referenceTotals {
		result.familyTotals[family] += points * factor
	}
}

// applyAvoidPenalty reduces every avoided family's raw total to 20% before
// normalization.
func applyAvoidPenalty(result *processResult) {
	for _, avoid := range result.meta.avoidFamilies {
		key := NormalizeTerm(avoid)
		if total, ok := result.familyTotals[key]; ok {
			result.familyTotals[key] = total * 0.2
		}
	}
}

// isSpecialFamilyKey filters control markers that questionnaire data may
// embed in the families map; they carry flags, not points.
func isSpecialFamilyKey(family string) bool {
	switch NormalizeTerm(family) {
	case "inherit_from_reference", "complement_reference":
		return true
	}
	return false
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
