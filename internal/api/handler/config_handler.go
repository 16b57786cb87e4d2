package handler

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/pkg/response"
	"Connectly/internal/pkg/settings"
	"Connectly/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

// ConfigHandler 运行时配置读写
type ConfigHandler struct {
	store settings.Store
}

func NewConfigHandler(store settings.Store) *ConfigHandler {
	return &ConfigHandler{
		store: store,
	}
}

func (s *ConfigHandler) GetAll(c *gin.Context) {
	all, err := s.store.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, all)
}

func (s *ConfigHandler) Get(c *gin.Context) {
	key := c.Param("key")
	value, ok, err := s.store.Get(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.Error(c, service.ErrSettingNotFound)
		return
	}
	response.Success(c, gin.H{key: value})
}

func (s *ConfigHandler) Set(c *gin.Context) {
	var req dto.SettingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	req.Key = strings.TrimSpace(req.Key)
	if req.Key == "" {
		response.Error(c, service.NewValidationError("key", service.MsgFieldBlank))
		return
	}
	if err := s.store.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{req.Key: req.Value})
}
