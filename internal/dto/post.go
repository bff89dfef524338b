package dto

import (
	"time"

	"github.com/yukikurage/blog/internal/models"
)

// UserDTO represents a user in rendered pages
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// PostDTO represents a post in rendered pages
type PostDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    uint64    `json:"author_id"`
	PublishedAt time.Time `json:"published_at"`
	Author      *UserDTO  `json:"author,omitempty"`
}

// CommentDTO represents a comment in rendered pages
type CommentDTO struct {
	ID          uint64    `json:"id"`
	PostID      uint64    `json:"post_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    uint64    `json:"author_id"`
	PublishedAt time.Time `json:"published_at"`
	Author      *UserDTO  `json:"author,omitempty"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	dto := PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		AuthorID:    post.AuthorID,
		PublishedAt: post.PublishedAt,
	}

	// Include author if preloaded
	if post.Author.ID != 0 {
		author := ToUserDTO(post.Author)
		dto.Author = &author
	}

	return dto
}

// ToPostDTOs converts a slice of posts
func ToPostDTOs(posts []models.Post) []PostDTO {
	items := make([]PostDTO, len(posts))
	for i, post := range posts {
		items[i] = ToPostDTO(post)
	}
	return items
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:          comment.ID,
		PostID:      comment.PostID,
		Title:       comment.Title,
		Content:     comment.Content,
		AuthorID:    comment.AuthorID,
		PublishedAt: comment.PublishedAt,
	}

	if comment.Author.ID != 0 {
		author := ToUserDTO(comment.Author)
		dto.Author = &author
	}

	return dto
}

// ToCommentDTOs converts a slice of comments
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	items := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		items[i] = ToCommentDTO(comment)
	}
	return items
}
