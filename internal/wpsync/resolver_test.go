package wpsync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryAPI struct {
	cats       []Category
	listCalls  int
	creates    int
	nextID     int64
	listErr    error
	createErr  error
	lastCreate string
}

func (f *fakeCategoryAPI) ListCategories(ctx context.Context) ([]Category, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cats, nil
}

func (f *fakeCategoryAPI) CreateCategory(ctx context.Context, name string) (int64, error) {
	f.creates++
	f.lastCreate = name
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.cats = append(f.cats, Category{ID: f.nextID, Name: name})
	return f.nextID, nil
}

func TestResolveHitsCacheFirst(t *testing.T) {
	api := &fakeCategoryAPI{}
	cache := NewMemoryCache()
	cache.Put("student lets", 7)

	id, err := NewResolver(api, cache).Resolve(context.Background(), "Student Lets")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Zero(t, api.listCalls, "cache hit must not touch the network")
}

func TestResolveMatchesRemoteListing(t *testing.T) {
	api := &fakeCategoryAPI{cats: []Category{{ID: 3, Name: "Family Homes"}}}
	cache := NewMemoryCache()
	r := NewResolver(api, cache)

	id, err := r.Resolve(context.Background(), "family homes")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Zero(t, api.creates)

	// second call is served from cache
	id, err = r.Resolve(context.Background(), "Family Homes")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, 1, api.listCalls)
}

func TestResolveCreatesMissingCategory(t *testing.T) {
	api := &fakeCategoryAPI{nextID: 6}
	cache := NewMemoryCache()

	id, err := NewResolver(api, cache).Resolve(context.Background(), " New Builds ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "New Builds", api.lastCreate, "created name keeps original casing")

	cached, ok := cache.Get("new builds")
	assert.True(t, ok)
	assert.Equal(t, int64(7), cached)
}

func TestResolveWrapsFailures(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewResolver(&fakeCategoryAPI{listErr: boom}, NewMemoryCache()).
		Resolve(context.Background(), "x")
	var te *TaxonomyError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "list", te.Op)
	assert.ErrorIs(t, err, boom)

	_, err = NewResolver(&fakeCategoryAPI{createErr: boom}, NewMemoryCache()).
		Resolve(context.Background(), "x")
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "create", te.Op)
}
