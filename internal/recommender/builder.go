package recommender

import "log"

// Builder turns a completed questionnaire into a Profile. It is stateless
// apart from the optional reference resolver used to analyze reference
// perfume answers.
type Builder struct {
	resolver ReferenceResolver
}

func NewBuilder(resolver ReferenceResolver) *Builder {
	return &Builder{resolver: resolver}
}

// BuildProfile aggregates family points and metadata from the answers and
// normalizes them into an immutable Profile. It is a total function:
// malformed answer references are skipped and surfaced via SkippedAnswers.
func (b *Builder) BuildProfile(answers []Answer, questions []Question, profileType ProfileType, flowID string) Profile {
	result := processAnswers(answers, questions, b.resolver)

	if result.skipped > 0 {
		log.Printf("Profile build skipped %d malformed answer reference(s)", result.skipped)
	}

	normalized := NormalizeFamilyScores(result.familyTotals)
	primary, subfamilies := PrimaryFamilies(normalized)

	level := ExperienceLevelForFlow(flowID)
	completeness := answerCompleteness(result.answered, level)
	confidence := confidenceScore(normalized, completeness)

	metadata := result.meta.toProfileMetadata()
	metadata.AllowedBrands = result.allowedBrands
	metadata.ReferencePerfumes = result.referenceKeys

	gender := result.meta.gender
	if gender == "" {
		gender = "unisex"
	}

	return Profile{
		Type:               profileType,
		FlowID:             flowID,
		ExperienceLevel:    level,
		PrimaryFamily:      primary,
		Subfamilies:        subfamilies,
		FamilyScores:       normalized,
		GenderPreference:   gender,
		Metadata:           metadata,
		ConfidenceScore:    confidence,
		AnswerCompleteness: completeness,
		SkippedAnswers:     result.skipped,
	}
}
