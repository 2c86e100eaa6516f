package models

import (
	"time"
)

// Post represents a text post. Posts are hard-deleted so that the
// database-level cascade removes dependent likes and comments.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Author is the owner's fullname, joined at query time.
	Author string `gorm:"->" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// UserLiked indicates whether the requesting user liked this post (computed)
	UserLiked bool `gorm:"->" json:"user_liked"`
}
