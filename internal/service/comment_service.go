package service

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/model"
	"Connectly/internal/pkg/permission"
	"Connectly/internal/repository"
	"context"
	"fmt"
	"strings"
)

type CommentService interface {
	ListComments(ctx context.Context) ([]*dto.CommentDTO, error)
	CreateComment(ctx context.Context, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	checker     permission.Checker[*model.Comment]
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	checker permission.Checker[*model.Comment],
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		checker:     checker,
	}
}

func (s *commentServiceImpl) ListComments(ctx context.Context) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.ListComments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommentDTO, len(comments))
	for i, c := range comments {
		out[i] = toCommentDTO(c)
	}
	return out, nil
}

// CreateComment 发表评论，作者与帖子都必须存在
func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(req.Text) == "" {
		verr.Add("text", MsgFieldBlank)
	}

	author, err := s.userRepo.GetUserById(ctx, req.Author)
	if err != nil {
		return nil, err
	}
	if author == nil {
		verr.Add("author", doesNotExist(req.Author))
	}

	post, err := s.postRepo.GetPost(ctx, req.Post)
	if err != nil {
		return nil, err
	}
	if post == nil {
		verr.Add("post", doesNotExist(req.Post))
	}

	if err = verr.OrNil(); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID: post.ID,
		UserID: author.ID,
		Text:   req.Text,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	comment.User = *author

	return toCommentDTO(comment), nil
}

// DeleteComment 删除评论，仅作者可操作
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !s.checker.Allow(userID, permission.MethodDelete, comment) {
		return ErrForbidden
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}

func doesNotExist(id uint64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

func toCommentDTO(c *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		Author:    dto.AuthorDTO{ID: c.UserID, Username: c.User.Username},
		Post:      c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
