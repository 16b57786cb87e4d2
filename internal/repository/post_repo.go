package repository

import (
	"Connectly/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostRepo interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	CountByType(ctx context.Context) (map[string]int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).Preload("User").Order("id").Find(&posts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list posts")
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get post")
	}
	return &post, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return pkgerrors.Wrap(s.db.WithContext(ctx).Omit("User").Create(post).Error, "create post")
}

// UpdatePost 整体替换可编辑字段，作者不可变
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	err := s.db.WithContext(ctx).
		Model(post).
		Select("title", "content", "post_type", "metadata", "updated_at").
		Updates(post).Error
	return pkgerrors.Wrap(err, "update post")
}

// DeletePost 删除帖子及其评论
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return pkgerrors.Wrap(err, "delete post comments")
		}
		if err := tx.Delete(&model.Post{}, id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete post")
		}
		return nil
	})
}

// CountByType 按帖子类型统计数量
func (s *PostRepoImpl) CountByType(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		PostType string
		Total    int64
	}
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("post_type, COUNT(*) AS total").
		Group("post_type").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "count posts by type")
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.PostType] = r.Total
	}
	return out, nil
}
