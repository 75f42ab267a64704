package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"essentia/internal/models/db_models"
)

type PerfumeRepository interface {
	ListAll(ctx context.Context) ([]db_models.Perfume, error)

	// ListUpdatedSince returns rows changed after the given unix timestamp,
	// used for incremental catalog sync.
	ListUpdatedSince(ctx context.Context, since int64) ([]db_models.Perfume, error)

	GetByKey(ctx context.Context, key string) (*db_models.Perfume, error)
}

type perfumeRepository struct {
	db *gorm.DB
}

func NewPerfumeRepository(db *gorm.DB) PerfumeRepository {
	return &perfumeRepository{db: db}
}

func (r *perfumeRepository) ListAll(ctx context.Context) ([]db_models.Perfume, error) {
	var perfumes []db_models.Perfume
	if err := r.db.WithContext(ctx).Find(&perfumes).Error; err != nil {
		return nil, err
	}
	return perfumes, nil
}

func (r *perfumeRepository) ListUpdatedSince(ctx context.Context, since int64) ([]db_models.Perfume, error) {
	var perfumes []db_models.Perfume
	err := r.db.WithContext(ctx).
		Where("updated_at > ?", since).
		Find(&perfumes).Error
	if err != nil {
		return nil, err
	}
	return perfumes, nil
}

func (r *perfumeRepository) GetByKey(ctx context.Context, key string) (*db_models.Perfume, error) {
	var perfume db_models.Perfume
	err := r.db.WithContext(ctx).First(&perfume, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &perfume, nil
}
