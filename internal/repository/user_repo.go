package repository

import (
	"Connectly/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint64) ([]*model.Post, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list users")
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.first(ctx, "username = ?", username)
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.first(ctx, "email = ?", email)
}

func (s *UserRepoImpl) first(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where(query, args...).First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(result.Error, "get user")
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return asDuplicateKeyError(err, "username", "email")
	}
	return nil
}

// DeleteUser 删除用户，级联删除其帖子、帖子下的评论以及其发表的评论，返回被删除的帖子
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Order("id").Find(&posts).Error; err != nil {
			return pkgerrors.Wrap(err, "list user posts")
		}
		postIDs := tx.Model(&model.Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("post_id IN (?)", postIDs).Delete(&model.Comment{}).Error; err != nil {
			return pkgerrors.Wrap(err, "delete comments under user posts")
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return pkgerrors.Wrap(err, "delete user comments")
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return pkgerrors.Wrap(err, "delete user posts")
		}
		if err := tx.Delete(&model.User{}, id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
