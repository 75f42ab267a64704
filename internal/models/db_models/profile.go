package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"github.com/lib/pq"
)

type PerfumeProfile struct {
	BaseModel
	OwnerID            uuid.UUID `gorm:"index"`
	Name               string
	ProfileType        string // "personal" | "gift"
	FlowID             string
	ExperienceLevel    string
	PrimaryFamily      string
	Subfamilies        pq.StringArray `gorm:"type:text[]"`
	GenderPreference   string
	FamilyScores       datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata           datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	ConfidenceScore    float64
	AnswerCompleteness float64
	SkippedAnswers     int
	OrderIndex         int `gorm:"index"` // 0-based position in the owner's list
}
