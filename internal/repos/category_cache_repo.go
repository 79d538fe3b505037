package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// CategoryCacheRepo persists resolved WordPress category ids. It satisfies
// wpsync.CategoryCache: a pure lookup optimization with idempotent upserts,
// so concurrent resolvers never corrupt it.
type CategoryCacheRepo struct{ db *sqlx.DB }

func NewCategoryCacheRepo(db *sqlx.DB) *CategoryCacheRepo { return &CategoryCacheRepo{db: db} }

func (r *CategoryCacheRepo) Get(name string) (int64, bool) {
	var id int64
	err := r.db.Get(&id, `SELECT term_id FROM wp_category_cache WHERE name=?`, name)
	if err == sql.ErrNoRows {
		return 0, false
	}
	if err != nil {
		// A broken cache read degrades to a miss; the resolver falls back
		// to a live lookup.
		return 0, false
	}
	return id, true
}

func (r *CategoryCacheRepo) Put(name string, id int64) {
	_, _ = r.db.Exec(`
	  INSERT INTO wp_category_cache(name, term_id)
	  VALUES(?,?)
	  ON CONFLICT(name) DO UPDATE SET term_id=excluded.term_id
	`, name, id)
}

func (r *CategoryCacheRepo) Invalidate(name string) {
	_, _ = r.db.Exec(`DELETE FROM wp_category_cache WHERE name=?`, name)
}
