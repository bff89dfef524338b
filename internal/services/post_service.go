package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/repository"
	"github.com/yukikurage/blog/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostAuthor = errors.New("only the author can modify this post")
)

// PostService handles post business logic
type PostService struct {
	postRepo repository.PostRepository
	now      func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// PostInput holds the editable fields of a post
type PostInput struct {
	Title   string
	Content string
}

// ListPosts returns a page of posts, newest first
func (s *PostService) ListPosts(params utils.PaginationParams) ([]models.Post, int64, error) {
	posts, total, err := s.postRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// ListByAuthor returns the posts written by a user, newest first
func (s *PostService) ListByAuthor(authorID uint64) ([]models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a post with its author
func (s *PostService) GetPost(postID uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(postID, "Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// CreatePost publishes a new post by authorID
func (s *PostService) CreatePost(authorID uint64, input PostInput) (*models.Post, error) {
	post := &models.Post{
		AuthorID:    authorID,
		Title:       input.Title,
		Content:     input.Content,
		PublishedAt: s.now(),
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// UpdatePost changes title and content and republishes the post
func (s *PostService) UpdatePost(postID, actorID uint64, input PostInput) (*models.Post, error) {
	post, err := s.authorizedPost(postID, actorID)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.PublishedAt = s.now()

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost deletes a post and its comments. It returns the deleted post.
func (s *PostService) DeletePost(postID, actorID uint64) (*models.Post, error) {
	post, err := s.authorizedPost(postID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	log.Printf("Deleted post %d and its comments (author=%d)", post.ID, post.AuthorID)
	return post, nil
}

// EditablePost returns a post if actorID may modify it
func (s *PostService) EditablePost(postID, actorID uint64) (*models.Post, error) {
	return s.authorizedPost(postID, actorID)
}

func (s *PostService) authorizedPost(postID, actorID uint64) (*models.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != actorID {
		return nil, ErrNotPostAuthor
	}

	return post, nil
}
