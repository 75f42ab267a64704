package recommender

import "strings"

// NormalizeFamilyScores rescales totals so the strongest family sits at 100.
// All-zero inputs are returned unchanged.
func NormalizeFamilyScores(scores map[string]float64) map[string]float64 {
	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore <= 0 {
		return scores
	}

	factor := 100.0 / maxScore
	normalized := make(map[string]float64, len(scores))
	for family, s := range scores {
		normalized[family] = s * factor
	}
	return normalized
}

// PrimaryFamilies picks the highest scored family and up to three runners-up.
func PrimaryFamilies(scores map[string]float64) (string, []string) {
	sorted := sortedFamilyScores(scores)
	if len(sorted) == 0 {
		return "unknown", nil
	}

	primary := sorted[0].family
	var subfamilies []string
	for _, fs := range sorted[1:] {
		if len(subfamilies) == 3 {
			break
		}
		subfamilies = append(subfamilies, fs.family)
	}
	return primary, subfamilies
}

// ExperienceLevelForFlow derives the level from the flow identifier.
func ExperienceLevelForFlow(flowID string) ExperienceLevel {
	switch {
	case strings.Contains(flowID, "_A"):
		return ExperienceBeginner
	case strings.Contains(flowID, "_B"):
		return ExperienceIntermediate
	case strings.Contains(flowID, "_C"):
		return ExperienceExpert
	default:
		return ExperienceBeginner
	}
}

func expectedAnswerCount(level ExperienceLevel) float64 {
	switch level {
	case ExperienceIntermediate:
		return 7.0
	case ExperienceExpert:
		return 8.0
	default:
		return 6.0
	}
}

func answerCompleteness(answered int, level ExperienceLevel) float64 {
	completeness := float64(answered) / expectedAnswerCount(level)
	if completeness > 1.0 {
		return 1.0
	}
	return completeness
}

// confidenceScore blends how clearly one family leads with how complete the
// questionnaire was. Clarity saturates at a 50-point lead; with fewer than
// two non-zero families the leader is unambiguous.
func confidenceScore(normalized map[string]float64, completeness float64) float64 {
	var nonZero []familyScore
	for _, fs := range sortedFamilyScores(normalized) {
		if fs.score > 0 {
			nonZero = append(nonZero, fs)
		}
	}

	clarity := 1.0
	if len(nonZero) >= 2 {
		clarity = (nonZero[0].score - nonZero[1].score) / 50.0
		if clarity > 1.0 {
			clarity = 1.0
		}
	}

	return clarity*0.6 + completeness*0.4
}
