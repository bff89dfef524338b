package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("only the author can modify this comment")
)

// CommentService handles comment business logic
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	now         func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CommentInput holds the editable fields of a comment
type CommentInput struct {
	Title   string
	Content string
}

// ListByPost returns the comments of a post, oldest first
func (s *CommentService) ListByPost(postID uint64) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// GetComment returns a comment
func (s *CommentService) GetComment(commentID uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

// CreateComment adds a comment by authorID under postID
func (s *CommentService) CreateComment(postID, authorID uint64, input CommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	comment := &models.Comment{
		PostID:      postID,
		AuthorID:    authorID,
		Title:       input.Title,
		Content:     input.Content,
		PublishedAt: s.now(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// UpdateComment changes title and content and republishes the comment
func (s *CommentService) UpdateComment(commentID, actorID uint64, input CommentInput) (*models.Comment, error) {
	comment, err := s.EditableComment(commentID, actorID)
	if err != nil {
		return nil, err
	}

	comment.Title = input.Title
	comment.Content = input.Content
	comment.PublishedAt = s.now()

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment deletes a comment. It returns the deleted comment.
func (s *CommentService) DeleteComment(commentID, actorID uint64) (*models.Comment, error) {
	comment, err := s.EditableComment(commentID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	log.Printf("Deleted comment %d on post %d", comment.ID, comment.PostID)
	return comment, nil
}

// EditableComment returns a comment if actorID may modify it
func (s *CommentService) EditableComment(commentID, actorID uint64) (*models.Comment, error) {
	comment, err := s.GetComment(commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != actorID {
		return nil, ErrNotCommentAuthor
	}

	return comment, nil
}
