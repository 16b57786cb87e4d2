package handler

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/pkg/consts"
	"Connectly/internal/pkg/response"
	"Connectly/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := pathID(c, "post_id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var postDTO dto.PostBaseDTO
	if err = c.ShouldBindJSON(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), uid, &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// CreatePostByFactory 经由工厂创建帖子，返回 ID 与类型
func (s *PostHandler) CreatePostByFactory(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.FactoryPostDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.postSvc.CreatePostByFactory(c.Request.Context(), uid, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := pathID(c, "post_id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	var postDTO dto.PostBaseDTO
	if err = c.ShouldBindJSON(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64(consts.UserIDKey), postID, &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := pathID(c, "post_id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.postSvc.DeletePost(c.Request.Context(), c.GetUint64(consts.UserIDKey), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetTypeStats 各类型帖子数量
func (s *PostHandler) GetTypeStats(c *gin.Context) {
	stats, err := s.postSvc.GetTypeStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
