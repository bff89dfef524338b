package models

import (
	"time"
)

type Comment struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	PostID      uint64    `gorm:"not null;index" json:"post_id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Title       string    `gorm:"type:varchar(64);not null" json:"title"`
	Content     string    `gorm:"type:varchar(1000)" json:"content"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`

	// Relations
	Post   Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
