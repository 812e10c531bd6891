package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to a post. A reply is a comment with ReplyTo pointing at its
// parent comment; PostID is inherited from the parent at creation time and
// never recomputed.
type Comment struct {
	gorm.Model
	Body      string    `json:"body" gorm:"type:text;not null"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	PostID    uint      `json:"postId" gorm:"not null;index"`
	ReplyTo   *uint     `json:"replyTo,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) Owner() uint { return c.UserID }
