package api

import (
	"Connectly/internal/api/config"
	"Connectly/internal/api/middleware"
	"Connectly/internal/pkg/logger"
	"Connectly/internal/pkg/util"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, mw *Middlewares, accessLog io.Writer, logCfg config.LoggerConfig) *gin.Engine {
	util.RegisterJSONTagNames()

	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, accessLog, logCfg)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("", group.UserHandler.ListUsers)
			userGroup.POST("", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(mw.Auth)
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.DELETE("/me", group.UserHandler.DeleteSelf)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/stats", group.PostHandler.GetTypeStats)

			authOptGroup := postGroup.Group("")
			authOptGroup.Use(mw.AuthOptional)
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(mw.Auth)
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.POST("/factory", group.PostHandler.CreatePostByFactory)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("", group.CommentHandler.ListComments)
			commentGroup.POST("", group.CommentHandler.CreateComment)
			commentGroup.DELETE("/:comment_id", mw.Auth, group.CommentHandler.DeleteComment)
		}

		apiGroup.GET("/protected", mw.Auth, group.ProtectedHandler.Get)

		configGroup := apiGroup.Group("/config")
		{
			configGroup.GET("", group.ConfigHandler.GetAll)
			configGroup.GET("/:key", group.ConfigHandler.Get)
			configGroup.PUT("", mw.Auth, group.ConfigHandler.Set)
		}
	}

	return r
}
