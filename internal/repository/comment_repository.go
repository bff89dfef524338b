package repository

import (
	"github.com/yukikurage/blog/internal/database"
	"github.com/yukikurage/blog/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID finds a comment by ID with optional preloading
func (r *GormCommentRepository) FindByID(id uint64, preload ...string) (*models.Comment, error) {
	var comment models.Comment
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&comment, id).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListByPost retrieves the comments of a post, oldest first
func (r *GormCommentRepository) ListByPost(postID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Scopes(database.OldestFirst).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates a comment
func (r *GormCommentRepository) Update(comment *models.Comment) error {
	return r.db.Model(comment).Select("title", "content", "published_at").Updates(comment).Error
}

// Delete deletes a comment
func (r *GormCommentRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByPost deletes every comment of a post
func (r *GormCommentRepository) DeleteByPost(postID uint64) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
