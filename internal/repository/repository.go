package repository

import (
	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// UpdateUsername changes the username of a user
	UpdateUsername(id uint64, username string) error

	// Delete deletes a user together with their posts and comments
	Delete(id uint64) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Post, error)

	// List retrieves all posts, newest first, with their authors
	List(params utils.PaginationParams) ([]models.Post, int64, error)

	// ListByAuthor retrieves the posts of one author, newest first
	ListByAuthor(authorID uint64) ([]models.Post, error)

	// Update updates a post
	Update(post *models.Post) error

	// Delete deletes a post and all of its comments
	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Comment, error)

	// ListByPost retrieves the comments of a post, oldest first, with their authors
	ListByPost(postID uint64) ([]models.Comment, error)

	// Update updates a comment
	Update(comment *models.Comment) error

	// Delete deletes a comment
	Delete(id uint64) error

	// DeleteByPost deletes every comment of a post
	DeleteByPost(postID uint64) error
}
