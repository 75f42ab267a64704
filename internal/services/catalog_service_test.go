package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essentia/internal/models/db_models"
	"essentia/pkg/memcache"
	"essentia/pkg/utils"
)

type fakePerfumeRepo struct {
	all     []db_models.Perfume
	changed []db_models.Perfume
	failAll bool
	failInc bool

	allCalls int
	incCalls int
}

func (f *fakePerfumeRepo) ListAll(ctx context.Context) ([]db_models.Perfume, error) {
	f.allCalls++
	if f.failAll {
		return nil, errors.New("db down")
	}
	return f.all, nil
}

func (f *fakePerfumeRepo) ListUpdatedSince(ctx context.Context, since int64) ([]db_models.Perfume, error) {
	f.incCalls++
	if f.failInc {
		return nil, errors.New("db down")
	}
	return f.changed, nil
}

func (f *fakePerfumeRepo) GetByKey(ctx context.Context, key string) (*db_models.Perfume, error) {
	return nil, nil
}

func TestCatalogServiceFullLoadThenIncremental(t *testing.T) {
	repo := &fakePerfumeRepo{
		all: []db_models.Perfume{
			{Key: "a", Name: "A", Family: "Woody"},
			{Key: "b", Name: "B", Family: "Citrus"},
		},
	}
	svc := NewCatalogService(repo, memcache.NewCatalogCache())

	catalog, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 2)
	assert.Equal(t, 1, repo.allCalls)

	// second load goes incremental and picks up the changed row
	repo.changed = []db_models.Perfume{{Key: "b", Name: "B v2", Family: "Citrus"}}
	catalog, err = svc.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 2)
	assert.Equal(t, 1, repo.allCalls)
	assert.Equal(t, 1, repo.incCalls)

	p, ok := svc.ResolveByKey("b")
	require.True(t, ok)
	assert.Equal(t, "B v2", p.Name)
}

func TestCatalogServiceNormalizesTaxonomy(t *testing.T) {
	repo := &fakePerfumeRepo{
		all: []db_models.Perfume{{Key: "a", Family: " Woody ", Gender: "Hombre"}},
	}
	svc := NewCatalogService(repo, memcache.NewCatalogCache())

	catalog, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "woody", catalog[0].Family)
	assert.Equal(t, "hombre", catalog[0].Gender)
}

func TestCatalogServiceEmptyCacheFailureIsUnavailable(t *testing.T) {
	repo := &fakePerfumeRepo{failAll: true}
	svc := NewCatalogService(repo, memcache.NewCatalogCache())

	_, err := svc.LoadAll(context.Background())
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
}

func TestCatalogServiceServesStaleOnRefreshFailure(t *testing.T) {
	repo := &fakePerfumeRepo{
		all: []db_models.Perfume{{Key: "a", Name: "A"}},
	}
	svc := NewCatalogService(repo, memcache.NewCatalogCache())

	_, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	repo.failInc = true
	catalog, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}
