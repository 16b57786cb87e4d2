package dto

import "time"

// PostDTO 帖子
type PostDTO struct {
	ID        uint64         `json:"id"`
	Author    AuthorDTO      `json:"author"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	PostType  string         `json:"post_type"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

// PostBaseDTO 帖子 - 新增或整体修改
type PostBaseDTO struct {
	Title    string         `json:"title" binding:"max=255"`
	Content  string         `json:"content"`
	PostType string         `json:"post_type" binding:"omitempty,max=20"`
	Metadata map[string]any `json:"metadata"`
}

// FactoryPostDTO 经由工厂创建帖子，Author 缺省为当前用户
type FactoryPostDTO struct {
	Author   uint64         `json:"author"`
	PostType string         `json:"post_type" binding:"required,max=20"`
	Title    string         `json:"title" binding:"max=255"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// FactoryPostResultDTO 工厂创建结果
type FactoryPostResultDTO struct {
	ID       uint64 `json:"id"`
	PostType string `json:"post_type"`
}
