package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository carries the shared gorm handle every aggregate
// repository embeds, plus the list-endpoint paging defaults.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB exposes the raw handle for callers that need transactions.
func (r *BaseRepository) DB() *gorm.DB {
	return r.db
}

// paginate applies offset/limit with the console's list defaults: page
// numbers are 1-based and an unset limit falls back to 20 rows.
func paginate(q *gorm.DB, page, limit int) *gorm.DB {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return q.Offset((page - 1) * limit).Limit(limit)
}
