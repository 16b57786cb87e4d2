package api

import (
	"Connectly/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	PostHandler      *handler.PostHandler
	CommentHandler   *handler.CommentHandler
	ProtectedHandler *handler.ProtectedHandler
	ConfigHandler    *handler.ConfigHandler
}

// Middlewares 需要依赖注入的中间件
type Middlewares struct {
	Auth         gin.HandlerFunc
	AuthOptional gin.HandlerFunc
}
