package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Post is a user-owned piece of content. DeletedAt drives the soft-delete
// lifecycle: once set, the post is invisible to every default-scoped query
// and can no longer be mutated.
type Post struct {
	gorm.Model
	Caption   string         `json:"caption" gorm:"type:text"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	Images    pq.StringArray `json:"images" gorm:"type:text[]"` // storage keys, cleaned up on delete
	UserID    uint           `json:"userId" gorm:"not null;index"`
	User      User           `json:"user" gorm:"foreignKey:UserID"`
	Comments  []Comment      `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	Likes     []Like         `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (p *Post) Owner() uint { return p.UserID }
