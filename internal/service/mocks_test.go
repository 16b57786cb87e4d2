package service

import (
	"Connectly/internal/model"
	"Connectly/internal/pkg/kafka"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *MockUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, id uint64) ([]*model.Post, error) {
	args := m.Called(ctx, id)
	posts, _ := args.Get(0).([]*model.Post)
	return posts, args.Error(1)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) ListPosts(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]*model.Post)
	return posts, args.Error(1)
}

func (m *MockPostRepo) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepo) UpdatePost(ctx context.Context, post *model.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepo) DeletePost(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepo) CountByType(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) ListComments(ctx context.Context) ([]*model.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]*model.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentRepo) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*model.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepo) DeleteComment(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID uint64, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Expiration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type MockBlacklist struct {
	mock.Mock
}

func (m *MockBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	return m.Called(ctx, signature, ttl).Error(0)
}

func (m *MockBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	args := m.Called(ctx, signature)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event *kafka.PostEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type MockStats struct {
	mock.Mock
}

func (m *MockStats) Counts(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}
