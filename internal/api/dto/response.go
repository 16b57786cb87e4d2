package dto

// ErrorDTO 错误返回
type ErrorDTO struct {
	Error string `json:"error"`
}

// MessageDTO 提示信息返回
type MessageDTO struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
