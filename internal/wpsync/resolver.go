package wpsync

import (
	"context"
	"strings"
)

// CategoryAPI is the slice of the client the resolver needs.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (int64, error)
}

// Resolver turns a human-readable category name into the remote term id,
// consulting the injected cache first. A cold or stale cache costs at
// most an extra network round trip, never a wrong id: every cache write
// carries an id a real remote operation just returned.
type Resolver struct {
	api   CategoryAPI
	cache CategoryCache
}

func NewResolver(api CategoryAPI, cache CategoryCache) *Resolver {
	return &Resolver{api: api, cache: cache}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve returns the remote id for the named category, creating the
// category remotely if it does not exist yet.
func (r *Resolver) Resolve(ctx context.Context, name string) (int64, error) {
	key := normalizeName(name)
	if id, ok := r.cache.Get(key); ok {
		return id, nil
	}

	cats, err := r.api.ListCategories(ctx)
	if err != nil {
		return 0, &TaxonomyError{Op: "list", Err: err}
	}
	for _, c := range cats {
		if normalizeName(c.Name) == key {
			r.cache.Put(key, c.ID)
			return c.ID, nil
		}
	}

	id, err := r.api.CreateCategory(ctx, strings.TrimSpace(name))
	if err != nil {
		return 0, &TaxonomyError{Op: "create", Err: err}
	}
	r.cache.Put(key, id)
	return id, nil
}
