package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/utils"
	"gorm.io/gorm"
)

// CreateUser inserts a user whose email is derived from the username
func CreateUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreatePost inserts a post published at the given time
func CreatePost(t *testing.T, db *gorm.DB, authorID uint64, title string, publishedAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		AuthorID:    authorID,
		Title:       title,
		Content:     "content of " + title,
		PublishedAt: publishedAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// CreateComment inserts a comment on a post
func CreateComment(t *testing.T, db *gorm.DB, postID, authorID uint64, title string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		PostID:      postID,
		AuthorID:    authorID,
		Title:       title,
		Content:     "content of " + title,
		PublishedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
