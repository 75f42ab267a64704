package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"essentia/internal/repositories"
	"essentia/internal/services"
	"essentia/pkg/memcache"
)

var Module = fx.Provide(
	provideCatalogCache, providePerfumeRepo, provideCatalogService)

func provideCatalogCache() memcache.CatalogStore {
	return memcache.NewCatalogCache()
}

func providePerfumeRepo(db *gorm.DB) repositories.PerfumeRepository {
	return repositories.NewPerfumeRepository(db)
}

func provideCatalogService(perfumeRepo repositories.PerfumeRepository, cache memcache.CatalogStore) services.CatalogServiceInterface {
	return services.NewCatalogService(perfumeRepo, cache)
}
