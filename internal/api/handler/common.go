package handler

import (
	"Connectly/internal/pkg/consts"
	"Connectly/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的资源 ID，非法 ID 视为资源不存在
func pathID(c *gin.Context, name string, notFound error) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return id, nil
}

// principal 当前登录用户，匿名为 0
func principal(c *gin.Context) (uint64, error) {
	uid := c.GetUint64(consts.UserIDKey)
	if uid == 0 {
		return 0, service.ErrUnauthenticated
	}
	return uid, nil
}
