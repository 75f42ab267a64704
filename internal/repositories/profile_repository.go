package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"essentia/internal/models/db_models"
)

type ProfileRepository interface {
	// Create appends the profile at the end of the owner's list, assigning
	// the next order index inside one transaction.
	Create(ctx context.Context, profile *db_models.PerfumeProfile) (uuid.UUID, error)

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.PerfumeProfile, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.PerfumeProfile, error)

	// Delete removes the profile and closes the gap by shifting every
	// higher-positioned sibling down one slot.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Reorder rewrites the owner's order indexes to match the given id
	// sequence exactly, 0-based and contiguous.
	Reorder(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *db_models.PerfumeProfile) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.PerfumeProfile{}).
			Where("owner_id = ?", profile.OwnerID).
			Count(&count).Error; err != nil {
			return err
		}
		profile.OrderIndex = int(count)
		return tx.Create(profile).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return profile.ID, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.PerfumeProfile, error) {
	var profile db_models.PerfumeProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.PerfumeProfile, error) {
	var profiles []db_models.PerfumeProfile
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("order_index asc").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile db_models.PerfumeProfile
		err := tx.First(&profile, "id = ? AND owner_id = ?", id, ownerID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return err
		}

		if err := tx.Delete(&profile).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.PerfumeProfile{}).
			Where("owner_id = ? AND order_index > ?", ownerID, profile.OrderIndex).
			UpdateColumn("order_index", gorm.Expr("order_index - 1")).Error
	})
}

func (r *profileRepository) Reorder(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			result := tx.Model(&db_models.PerfumeProfile{}).
				Where("id = ? AND owner_id = ?", id, ownerID).
				UpdateColumn("order_index", index)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
