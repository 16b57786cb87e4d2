package factory

import (
	"Connectly/internal/model"
	"context"
	"fmt"
	"sync"
)

// InvalidArgumentError 工厂校验失败
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// PostCreator 帖子持久化
type PostCreator interface {
	CreatePost(ctx context.Context, post *model.Post) error
}

// PostFactory 按帖子类型校验 metadata 并创建帖子
type PostFactory struct {
	mu    sync.RWMutex
	order []string
	rules map[string][]string
	repo  PostCreator
}

func NewPostFactory(repo PostCreator) *PostFactory {
	f := &PostFactory{
		rules: make(map[string][]string),
		repo:  repo,
	}
	f.Register(model.PostTypeText)
	f.Register(model.PostTypeImage, "file_size")
	f.Register(model.PostTypeVideo, "duration")
	return f
}

// Register 注册帖子类型及其必填 metadata 键，重复注册会覆盖规则
func (f *PostFactory) Register(postType string, requiredKeys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rules[postType]; !ok {
		f.order = append(f.order, postType)
	}
	keys := make([]string, len(requiredKeys))
	copy(keys, requiredKeys)
	f.rules[postType] = keys
}

// Types 已注册的帖子类型，按注册顺序
func (f *PostFactory) Types() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Validate 校验帖子类型与 metadata
func (f *PostFactory) Validate(postType string, metadata map[string]any) error {
	f.mu.RLock()
	required, ok := f.rules[postType]
	f.mu.RUnlock()

	if !ok {
		return &InvalidArgumentError{
			Field:   "post_type",
			Message: fmt.Sprintf("unsupported post type %q, must be one of %v", postType, f.Types()),
		}
	}

	for _, key := range required {
		if _, exists := metadata[key]; !exists {
			return &InvalidArgumentError{
				Field:   "metadata",
				Message: fmt.Sprintf("missing required metadata key %q for type %q", key, postType),
			}
		}
	}
	return nil
}

// CreatePost 校验后持久化帖子
func (f *PostFactory) CreatePost(ctx context.Context, author *model.User, postType, title, content string, metadata map[string]any) (*model.Post, error) {
	if author == nil || author.ID == 0 {
		return nil, &InvalidArgumentError{Field: "author", Message: "author is required"}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	if err := f.Validate(postType, metadata); err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:   author.ID,
		Title:    title,
		Content:  content,
		PostType: postType,
		Metadata: metadata,
	}
	if err := f.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	post.User = *author

	return post, nil
}
