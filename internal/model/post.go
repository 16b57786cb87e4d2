package model

import (
	"time"
)

const (
	PostTypeText  = "text"
	PostTypeImage = "image"
	PostTypeVideo = "video"
)

// Metadata 帖子扩展字段，必填项由帖子类型决定
type Metadata map[string]any

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_posts_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null;default:''" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	PostType  string    `gorm:"type:varchar(20);not null;default:'text';index:idx_posts_post_type" json:"post_type"`
	Metadata  Metadata  `gorm:"type:json;serializer:json" json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}

// AuthorID 帖子作者
func (p *Post) AuthorID() uint64 {
	return p.UserID
}
