package service

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/model"
	"Connectly/internal/pkg/consts"
	"Connectly/internal/pkg/factory"
	"Connectly/internal/pkg/kafka"
	"Connectly/internal/pkg/permission"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	svc       PostService
	posts     *MockPostRepo
	users     *MockUserRepo
	publisher *MockPublisher
	stats     *MockStats
}

func newPostFixture() *postFixture {
	f := &postFixture{
		posts:     new(MockPostRepo),
		users:     new(MockUserRepo),
		publisher: new(MockPublisher),
		stats:     new(MockStats),
	}
	f.svc = NewPostService(f.posts, f.users, factory.NewPostFactory(f.posts), permission.PostOwnership{}, f.publisher, f.stats)
	return f
}

var bob = &model.User{ID: 1, Username: "bob"}

func isEvent(eventType string) interface{} {
	return mock.MatchedBy(func(e *kafka.PostEvent) bool { return e.Type == eventType })
}

func TestCreatePostUsesPrincipalAsAuthor(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	f.users.On("GetUserById", ctx, uint64(1)).Return(bob, nil)
	f.posts.On("CreatePost", ctx, mock.MatchedBy(func(p *model.Post) bool {
		return p.UserID == 1 && p.PostType == model.PostTypeText
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Post).ID = 10
	}).Return(nil)
	f.publisher.On("Publish", ctx, isEvent(consts.PostEventCreated)).Return(nil)

	out, err := f.svc.CreatePost(ctx, 1, &dto.PostBaseDTO{Title: "Hi", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), out.ID)
	assert.Equal(t, "bob", out.Author.Username)
	assert.Equal(t, map[string]any{}, out.Metadata)
	f.publisher.AssertExpectations(t)
}

func TestCreatePostRejectsMissingMetadata(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	f.users.On("GetUserById", ctx, uint64(1)).Return(bob, nil)

	_, err := f.svc.CreatePost(ctx, 1, &dto.PostBaseDTO{PostType: model.PostTypeImage})
	var argErr *factory.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	f.posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreatePostByFactory(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	f.users.On("GetUserById", ctx, uint64(1)).Return(bob, nil)
	f.users.On("GetUserById", ctx, uint64(99)).Return(nil, nil)
	f.posts.On("CreatePost", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Post).ID = 11
	}).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := f.svc.CreatePostByFactory(ctx, 1, &dto.FactoryPostDTO{
		PostType: model.PostTypeVideo,
		Metadata: map[string]any{"duration": 30},
	})
	require.NoError(t, err, "publish failures must not fail the request")
	assert.Equal(t, &dto.FactoryPostResultDTO{ID: 11, PostType: model.PostTypeVideo}, out)

	_, err = f.svc.CreatePostByFactory(ctx, 1, &dto.FactoryPostDTO{Author: 99, PostType: model.PostTypeText})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdatePostOwnership(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	post := &model.Post{ID: 5, UserID: 1, Title: "old", PostType: model.PostTypeText, User: *bob}
	f.posts.On("GetPost", ctx, uint64(5)).Return(post, nil)
	f.posts.On("GetPost", ctx, uint64(6)).Return(nil, nil)

	_, err := f.svc.UpdatePost(ctx, 2, 5, &dto.PostBaseDTO{Title: "hijack"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "old", post.Title)

	_, err = f.svc.UpdatePost(ctx, 1, 6, &dto.PostBaseDTO{Title: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	f.posts.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything)
}

func TestUpdatePostFullReplace(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	post := &model.Post{ID: 5, UserID: 1, Title: "old", Content: "body", PostType: model.PostTypeImage,
		Metadata: model.Metadata{"file_size": 10}, User: *bob}
	f.posts.On("GetPost", ctx, uint64(5)).Return(post, nil)
	f.posts.On("UpdatePost", ctx, post).Return(nil)
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(e *kafka.PostEvent) bool {
		return e.Type == consts.PostEventUpdated && e.PreviousType == model.PostTypeImage && e.PostType == model.PostTypeText
	})).Return(nil)

	out, err := f.svc.UpdatePost(ctx, 1, 5, &dto.PostBaseDTO{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", out.Title)
	assert.Empty(t, out.Content)
	assert.Equal(t, model.PostTypeText, out.PostType)
	assert.Empty(t, out.Metadata)
	f.publisher.AssertExpectations(t)
}

func TestUpdatePostRevalidates(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	post := &model.Post{ID: 5, UserID: 1, PostType: model.PostTypeText}
	f.posts.On("GetPost", ctx, uint64(5)).Return(post, nil)

	_, err := f.svc.UpdatePost(ctx, 1, 5, &dto.PostBaseDTO{PostType: model.PostTypeVideo})
	var argErr *factory.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, model.PostTypeText, post.PostType)
}

func TestDeletePost(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	post := &model.Post{ID: 5, UserID: 1, PostType: model.PostTypeText}
	f.posts.On("GetPost", ctx, uint64(5)).Return(post, nil)
	f.posts.On("DeletePost", ctx, uint64(5)).Return(nil)
	f.publisher.On("Publish", ctx, isEvent(consts.PostEventDeleted)).Return(nil)

	assert.ErrorIs(t, f.svc.DeletePost(ctx, 2, 5), ErrForbidden)
	assert.ErrorIs(t, f.svc.DeletePost(ctx, 0, 5), ErrForbidden)
	require.NoError(t, f.svc.DeletePost(ctx, 1, 5))
	f.posts.AssertNumberOfCalls(t, "DeletePost", 1)
}

func TestGetPostIsIdempotent(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	f.posts.On("GetPost", ctx, uint64(5)).Return(&model.Post{ID: 5, UserID: 1, Title: "t", User: *bob}, nil)

	first, err := f.svc.GetPost(ctx, 5)
	require.NoError(t, err)
	second, err := f.svc.GetPost(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	f.posts.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything)
}

func TestGetTypeStatsFillsRegisteredTypes(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()

	f.stats.On("Counts", ctx).Return(map[string]int64{"image": 3, "poll": 1}, nil)

	stats, err := f.svc.GetTypeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"text": 0, "image": 3, "video": 0, "poll": 1}, stats)
}
