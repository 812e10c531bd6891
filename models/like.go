package models

import (
	"time"
)

// Like is a hard-deleted toggle relation. The composite unique index on
// (user_id, post_id) is the authoritative at-most-one guarantee; the service
// layer's existence check is only there for a friendly error message.
type Like struct {
	LikeID    uint      `gorm:"column:like_id;primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"column:post_id;not null;uniqueIndex:idx_like_user_post" json:"postId"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_like_user_post" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
