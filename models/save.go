package models

import (
	"time"
)

// Save is a bookmark: same toggle-relation shape as Like, same composite
// unique index, hard-deleted on removal.
type Save struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_save_user_post" json:"postId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_save_user_post" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

func (s *Save) Owner() uint { return s.UserID }
