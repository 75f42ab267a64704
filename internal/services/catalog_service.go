package services

import (
	"context"
	"log"

	"essentia/internal/models/db_models"
	"essentia/internal/recommender"
	"essentia/internal/repositories"
	"essentia/pkg/memcache"
	"essentia/pkg/utils"
)

type CatalogServiceInterface interface {
	// LoadAll returns the full catalog, refreshing the cache incrementally
	// first. A stale snapshot is served when the refresh fails; an empty
	// cache plus a failed load is ErrCatalogUnavailable.
	LoadAll(ctx context.Context) ([]recommender.Perfume, error)

	// ResolveByKey answers reference lookups from the cache only.
	ResolveByKey(key string) (recommender.Perfume, bool)
}

type CatalogService struct {
	perfumeRepository repositories.PerfumeRepository
	cache             memcache.CatalogStore
}

func NewCatalogService(perfumeRepository repositories.PerfumeRepository, cache memcache.CatalogStore) CatalogServiceInterface {
	return &CatalogService{
		perfumeRepository: perfumeRepository,
		cache:             cache,
	}
}

func (s *CatalogService) LoadAll(ctx context.Context) ([]recommender.Perfume, error) {
	if err := s.refresh(ctx); err != nil {
		if s.cache.Len() == 0 {
			log.Printf("Catalog load failed with empty cache: %v", err)
			return nil, utils.ErrCatalogUnavailable
		}
		log.Printf("Catalog refresh failed, serving stale snapshot: %v", err)
	}
	return s.cache.Snapshot(), nil
}

func (s *CatalogService) ResolveByKey(key string) (recommender.Perfume, bool) {
	return s.cache.Get(key)
}

// refresh does a full load on first use, then incremental syncs keyed on
// the rows' updated_at timestamps.
func (s *CatalogService) refresh(ctx context.Context) error {
	syncedAt := utils.NowUnixSeconds()

	if s.cache.Len() == 0 {
		rows, err := s.perfumeRepository.ListAll(ctx)
		if err != nil {
			return err
		}
		s.cache.ReplaceAll(toDomainPerfumes(rows), syncedAt)
		return nil
	}

	rows, err := s.perfumeRepository.ListUpdatedSince(ctx, s.cache.LastSync())
	if err != nil {
		return err
	}
	s.cache.MergeChanged(toDomainPerfumes(rows), syncedAt)
	return nil
}

func toDomainPerfumes(rows []db_models.Perfume) []recommender.Perfume {
	out := make([]recommender.Perfume, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}
