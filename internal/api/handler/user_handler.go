package handler

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/pkg/consts"
	"Connectly/internal/pkg/response"
	"Connectly/internal/service"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

const loginSuccessMessage = "Authentication successful!"

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBindJSON(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Login 空请求体按缺少凭据处理，与其他失败返回同一个 401
func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBindJSON(&loginDTO); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageDTO{Message: loginSuccessMessage, Token: token})
}

func (s *UserHandler) Logout(c *gin.Context) {
	if err := s.userSvc.Logout(c.Request.Context(), c.GetString(consts.TokenKey)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Logged out.")
}

// DeleteSelf 注销当前用户
func (s *UserHandler) DeleteSelf(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.DeleteUser(c.Request.Context(), uid); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.Logout(c.Request.Context(), c.GetString(consts.TokenKey)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
