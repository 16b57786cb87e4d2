package handler

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/pkg/consts"
	"Connectly/internal/pkg/response"
	"Connectly/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	comments, err := s.commentSvc.ListComments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.CreateComment(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := pathID(c, "comment_id", service.ErrCommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.commentSvc.DeleteComment(c.Request.Context(), c.GetUint64(consts.UserIDKey), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
