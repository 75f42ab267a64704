package recommender

import "strings"

// ProfileType selects the scoring weight table.
type ProfileType string

const (
	ProfileTypePersonal ProfileType = "personal"
	ProfileTypeGift     ProfileType = "gift"
)

// ExperienceLevel is derived from the questionnaire flow and drives
// the expected answer count when computing completeness.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// GiftFlow identifies one of the gift questionnaire sub-flows, each with
// its own scoring strategy.
type GiftFlow string

const (
	GiftFlowA  GiftFlow = "gift_A"
	GiftFlowB1 GiftFlow = "gift_B1"
	GiftFlowB2 GiftFlow = "gift_B2"
	GiftFlowB3 GiftFlow = "gift_B3"
	GiftFlowB4 GiftFlow = "gift_B4"
)

// ParseGiftFlow maps a raw flow identifier onto a known gift sub-flow.
func ParseGiftFlow(id string) (GiftFlow, bool) {
	switch {
	case strings.Contains(id, "B1"):
		return GiftFlowB1, true
	case strings.Contains(id, "B2"):
		return GiftFlowB2, true
	case strings.Contains(id, "B3"):
		return GiftFlowB3, true
	case strings.Contains(id, "B4"):
		return GiftFlowB4, true
	case strings.Contains(id, "_A"):
		return GiftFlowA, true
	}
	return "", false
}

// NormalizeTerm is the single normalization applied to families, genders,
// notes and other taxonomy terms at the ingestion boundary.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Question is one questionnaire entry with its selectable options.
type Question struct {
	ID           string
	Key          string
	Category     string
	Text         string
	QuestionType string // "routing" questions never contribute points
	DataSource   string // "perfume_database", "notes_database", "brands_database"
	MultiSelect  bool
	Weight       *int // explicit weight; inferred from semantics when nil
	OrderIndex   int
	Options      []Option
}

// Option carries per-family points plus optional preference metadata.
type Option struct {
	ID       string
	Label    string
	Value    string // autocomplete payload, comma separated
	Families map[string]int
	Metadata *OptionMetadata
}

// OptionMetadata holds the auxiliary signals an option can set on a profile.
type OptionMetadata struct {
	GenderType          string
	Occasions           []string
	Seasons             []string
	Personality         []string
	AvoidFamilies       []string
	MustContainNotes    []string
	HeartNotesBonus     []string
	BaseNotesBonus      []string
	Intensity           string
	IntensityMax        string
	Duration            string
	Projection          string
	DiscoveryMode       string
	StructurePreference string
	PhasePreference     string
}

// Answer is the user's selection for a single question.
type Answer struct {
	QuestionID string
	OptionIDs  []string
	FreeText   string
}

// Perfume is a catalog item as seen by the scoring core.
type Perfume struct {
	Key         string
	Name        string
	Brand       string
	Gender      string
	Family      string
	Subfamilies []string
	Intensity   string
	Duration    string
	Popularity  float64 // 0-10
	Price       string  // "low", "medium", "high", "luxury"
	Year        int
	TopNotes    []string
	HeartNotes  []string
	BaseNotes   []string
	Occasions   []string
	Seasons     []string
}

// AllNotes returns the combined top/heart/base note list.
func (p Perfume) AllNotes() []string {
	notes := make([]string, 0, len(p.TopNotes)+len(p.HeartNotes)+len(p.BaseNotes))
	notes = append(notes, p.TopNotes...)
	notes = append(notes, p.HeartNotes...)
	notes = append(notes, p.BaseNotes...)
	return notes
}

// ProfileMetadata aggregates the non-family preference signals extracted
// from the answers.
type ProfileMetadata struct {
	PreferredNotes      []string
	AvoidFamilies       []string
	MustContainNotes    []string
	HeartNotesBonus     []string
	BaseNotesBonus      []string
	PreferredOccasions  []string
	PreferredSeasons    []string
	PersonalityTraits   []string
	AllowedBrands       []string
	ReferencePerfumes   []string
	IntensityPreference string
	IntensityMax        string
	DurationPreference  string
	ProjectionPreference string
	DiscoveryMode       string
	StructurePreference string
	PhasePreference     string
}

// Profile is the computed preference snapshot for one completed
// questionnaire. It is immutable after creation; persistence bookkeeping
// (order index, timestamps) belongs to the store, not to this core.
type Profile struct {
	Name               string
	Type               ProfileType
	FlowID             string
	ExperienceLevel    ExperienceLevel
	PrimaryFamily      string
	Subfamilies        []string
	FamilyScores       map[string]float64 // normalized 0-100
	GenderPreference   string
	Metadata           ProfileMetadata
	ConfidenceScore    float64 // 0-1
	AnswerCompleteness float64 // 0-1
	SkippedAnswers     int     // malformed answer references, observable per policy
}

// MatchFactor explains one scoring contribution; the highest-weight factor
// becomes the recommendation reason.
type MatchFactor struct {
	Label       string
	Description string
	Weight      float64
}

// Recommendation is one ranked catalog item with its explanation.
type Recommendation struct {
	PerfumeKey   string        `json:"perfume_key"`
	Score        float64       `json:"score"`
	Reason       string        `json:"reason"`
	Confidence   string        `json:"confidence"` // "high", "medium", "low"
	MatchFactors []MatchFactor `json:"-"`
}

// ReferenceResolver looks up reference perfumes named in autocomplete
// answers. Implemented by the catalog service; nil disables reference
// analysis.
type ReferenceResolver interface {
	ResolveByKey(key string) (Perfume, bool)
}
