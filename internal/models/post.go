package models

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Title       string    `gorm:"type:varchar(64);not null" json:"title"`
	Content     string    `gorm:"type:varchar(2000)" json:"content"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`

	// Relations
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
