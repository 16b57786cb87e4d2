package handler

import (
	"Connectly/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler {
	return &ProtectedHandler{}
}

func (s *ProtectedHandler) Get(c *gin.Context) {
	response.Message(c, "Authenticated!")
}
