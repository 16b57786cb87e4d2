package dto

import "time"

// UserDTO 用户，不包含密码
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorDTO 作者简要信息
type AuthorDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

// CredentialDTO 登录凭据，缺失字段按凭据错误处理
type CredentialDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
