package db_models

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"essentia/internal/recommender"
)

type Question struct {
	BaseModel
	FlowID       string `gorm:"index"`
	Key          string
	Category     string
	Text         string
	QuestionType string // "single_choice" | "multi_choice" | "autocomplete_*" | "routing"
	DataSource   string // "perfume_database" | "notes_database" | "brands_database"
	MultiSelect  bool
	Weight       *int
	OrderIndex   int

	Options []QuestionOption `gorm:"foreignKey:QuestionID"`
}

type QuestionOption struct {
	BaseModel
	QuestionID uuid.UUID `gorm:"index"`
	Label      string
	Value      string
	OrderIndex int
	Families   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
}

// optionMetadataJSON is the stored shape of an option's metadata blob.
type optionMetadataJSON struct {
	GenderType          string   `json:"gender_type,omitempty"`
	Occasions           []string `json:"occasions,omitempty"`
	Seasons             []string `json:"seasons,omitempty"`
	Personality         []string `json:"personality,omitempty"`
	AvoidFamilies       []string `json:"avoid_families,omitempty"`
	MustContainNotes    []string `json:"must_contain_notes,omitempty"`
	HeartNotesBonus     []string `json:"heart_notes_bonus,omitempty"`
	BaseNotesBonus      []string `json:"base_notes_bonus,omitempty"`
	Intensity           string   `json:"intensity,omitempty"`
	IntensityMax        string   `json:"intensity_max,omitempty"`
	Duration            string   `json:"duration,omitempty"`
	Projection          string   `json:"projection,omitempty"`
	DiscoveryMode       string   `json:"discovery_mode,omitempty"`
	StructurePreference string   `json:"structure_preference,omitempty"`
	PhasePreference     string   `json:"phase_preference,omitempty"`
}

// ToDomain converts the row and its options into the scoring core's
// representation. Malformed JSON blobs degrade to empty values rather than
// failing the whole question set.
func (q *Question) ToDomain() recommender.Question {
	options := make([]recommender.Option, 0, len(q.Options))
	for i := range q.Options {
		options = append(options, q.Options[i].toDomain())
	}

	return recommender.Question{
		ID:           q.ID.String(),
		Key:          q.Key,
		Category:     q.Category,
		Text:         q.Text,
		QuestionType: q.QuestionType,
		DataSource:   q.DataSource,
		MultiSelect:  q.MultiSelect,
		Weight:       q.Weight,
		OrderIndex:   q.OrderIndex,
		Options:      options,
	}
}

func (o *QuestionOption) toDomain() recommender.Option {
	option := recommender.Option{
		ID:    o.ID.String(),
		Label: o.Label,
		Value: o.Value,
	}

	if len(o.Families) > 0 {
		families := make(map[string]int)
		if err := json.Unmarshal(o.Families, &families); err != nil {
			log.Printf("Skipping malformed families blob on option %s: %v", o.ID, err)
		} else {
			option.Families = families
		}
	}

	if len(o.Metadata) > 0 {
		var meta optionMetadataJSON
		if err := json.Unmarshal(o.Metadata, &meta); err != nil {
			log.Printf("Skipping malformed metadata blob on option %s: %v", o.ID, err)
		} else {
			option.Metadata = &recommender.OptionMetadata{
				GenderType:          meta.GenderType,
				Occasions:           meta.Occasions,
				Seasons:             meta.Seasons,
				Personality:         meta.Personality,
				AvoidFamilies:       meta.AvoidFamilies,
				MustContainNotes:    meta.MustContainNotes,
				HeartNotesBonus:     meta.HeartNotesBonus,
				BaseNotesBonus:      meta.BaseNotesBonus,
				Intensity:           meta.Intensity,
				IntensityMax:        meta.IntensityMax,
				Duration:            meta.Duration,
				Projection:          meta.Projection,
				DiscoveryMode:       meta.DiscoveryMode,
				StructurePreference: meta.StructurePreference,
				PhasePreference:     meta.PhasePreference,
			}
		}
	}

	return option
}
