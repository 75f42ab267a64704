package db_models

import (
	"github.com/lib/pq"

	"essentia/internal/recommender"
)

type Perfume struct {
	BaseModel
	Key         string `gorm:"uniqueIndex"` // stable catalog key, e.g. "chanel_no5"
	Name        string
	Brand       string
	Gender      string
	Family      string
	Subfamilies pq.StringArray `gorm:"type:text[]"`
	Intensity   string
	Duration    string
	Popularity  float64
	Price       string // "low" | "medium" | "high" | "luxury"
	Year        int
	TopNotes    pq.StringArray `gorm:"type:text[]"`
	HeartNotes  pq.StringArray `gorm:"type:text[]"`
	BaseNotes   pq.StringArray `gorm:"type:text[]"`
	Occasions   pq.StringArray `gorm:"type:text[]"`
	Seasons     pq.StringArray `gorm:"type:text[]"`
}

// ToDomain converts the row into the scoring core's representation,
// normalizing taxonomy terms once at the ingestion boundary.
func (p *Perfume) ToDomain() recommender.Perfume {
	return recommender.Perfume{
		Key:         p.Key,
		Name:        p.Name,
		Brand:       p.Brand,
		Gender:      recommender.NormalizeTerm(p.Gender),
		Family:      recommender.NormalizeTerm(p.Family),
		Subfamilies: normalizeTerms(p.Subfamilies),
		Intensity:   recommender.NormalizeTerm(p.Intensity),
		Duration:    recommender.NormalizeTerm(p.Duration),
		Popularity:  p.Popularity,
		Price:       recommender.NormalizeTerm(p.Price),
		Year:        p.Year,
		TopNotes:    normalizeTerms(p.TopNotes),
		HeartNotes:  normalizeTerms(p.HeartNotes),
		BaseNotes:   normalizeTerms(p.BaseNotes),
		Occasions:   normalizeTerms(p.Occasions),
		Seasons:     normalizeTerms(p.Seasons),
	}
}

func normalizeTerms(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, recommender.NormalizeTerm(v))
	}
	return out
}
