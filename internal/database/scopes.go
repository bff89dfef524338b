package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/blog/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// NewestFirst orders posts or comments by publication time, latest first.
// The id breaks ties between entries published in the same instant.
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("published_at DESC, id DESC")
}

// OldestFirst is the reverse of NewestFirst
func OldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("published_at ASC, id ASC")
}
