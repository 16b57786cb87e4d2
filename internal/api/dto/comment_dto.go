package dto

import "time"

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64    `json:"id"`
	Author    AuthorDTO `json:"author"`
	Post      uint64    `json:"post"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentDTO 发表评论
type CreateCommentDTO struct {
	Author uint64 `json:"author" binding:"required"`
	Post   uint64 `json:"post" binding:"required"`
	Text   string `json:"text" binding:"required"`
}
