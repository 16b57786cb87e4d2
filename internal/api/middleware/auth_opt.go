package middleware

import (
	"Connectly/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.UserIDKey, uint64(0))

		if token, ok := bearerToken(c); ok {
			if claims, err := tokens.ValidateToken(token); err == nil {
				c.Set(consts.UserIDKey, claims.UserID)
				c.Set(consts.UsernameKey, claims.Username)
			}
		}

		c.Next()
	}
}
