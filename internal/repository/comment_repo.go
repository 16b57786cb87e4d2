package repository

import (
	"Connectly/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentRepo interface {
	ListComments(ctx context.Context) ([]*model.Comment, error)
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) ListComments(ctx context.Context) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	if err := s.db.WithContext(ctx).Preload("User").Order("id").Find(&comments).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list comments")
	}
	return comments, nil
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get comment")
	}
	return &comment, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return pkgerrors.Wrap(s.db.WithContext(ctx).Omit("User", "Post").Create(comment).Error, "create comment")
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return pkgerrors.Wrap(s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error, "delete comment")
}
