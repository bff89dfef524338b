package repository

import (
	"github.com/yukikurage/blog/internal/database"
	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/utils"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID with optional preloading
func (r *GormPostRepository) FindByID(id uint64, preload ...string) (*models.Post, error) {
	var post models.Post
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&post, id).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// List retrieves a page of posts ordered by publication time, newest first
func (r *GormPostRepository) List(params utils.PaginationParams) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	if err := r.db.
		Preload("Author").
		Scopes(database.NewestFirst, database.Paginate(params)).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListByAuthor retrieves the posts of one author, newest first
func (r *GormPostRepository) ListByAuthor(authorID uint64) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.
		Where("author_id = ?", authorID).
		Scopes(database.NewestFirst).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates a post
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Model(post).Select("title", "content", "published_at").Updates(post).Error
}

// Delete deletes a post after deleting its comments, in one transaction
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := NewCommentRepository(tx).DeleteByPost(id); err != nil {
			return err
		}

		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
