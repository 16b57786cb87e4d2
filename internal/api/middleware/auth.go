package middleware

import (
	"Connectly/internal/pkg/consts"
	"Connectly/internal/pkg/response"
	"Connectly/internal/pkg/security"
	"Connectly/internal/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenValidator 校验 Token 并返回身份信息
type TokenValidator interface {
	ValidateToken(tokenString string) (*security.UserClaims, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(tokens TokenValidator, blacklist security.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, service.ErrUnauthenticated.Error())
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), signature)
		if err != nil {
			response.Error(c, err)
			return
		}
		if revoked {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.UsernameKey, claims.Username)
		c.Set(consts.TokenKey, tokenString)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}
