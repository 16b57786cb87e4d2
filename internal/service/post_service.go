package service

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/model"
	"Connectly/internal/pkg/consts"
	"Connectly/internal/pkg/factory"
	"Connectly/internal/pkg/kafka"
	"Connectly/internal/pkg/permission"
	"Connectly/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

// PostStatsReader 按帖子类型的计数
type PostStatsReader interface {
	Counts(ctx context.Context) (map[string]int64, error)
}

type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	CreatePostByFactory(ctx context.Context, userID uint64, req *dto.FactoryPostDTO) (*dto.FactoryPostResultDTO, error)
	UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
	GetTypeStats(ctx context.Context) (map[string]int64, error)
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	userRepo  repository.UserRepo
	factory   *factory.PostFactory
	checker   permission.Checker[*model.Post]
	publisher kafka.PostEventPublisher
	stats     PostStatsReader
}

func NewPostService(
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	postFactory *factory.PostFactory,
	checker permission.Checker[*model.Post],
	publisher kafka.PostEventPublisher,
	stats PostStatsReader,
) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		userRepo:  userRepo,
		factory:   postFactory,
		checker:   checker,
		publisher: publisher,
		stats:     stats,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		if out[i], err = toPostDTO(post); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post)
}

// CreatePost 创建帖子，作者为当前用户
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	author, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrTokenInvalid
	}

	post, err := s.factory.CreatePost(ctx, author, postTypeOrDefault(postDTO.PostType), postDTO.Title, postDTO.Content, postDTO.Metadata)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, consts.PostEventCreated, post, "")
	return toPostDTO(post)
}

// CreatePostByFactory 指定作者创建帖子，作者缺省为当前用户
func (s *postServiceImpl) CreatePostByFactory(ctx context.Context, userID uint64, req *dto.FactoryPostDTO) (*dto.FactoryPostResultDTO, error) {
	authorID := req.Author
	if authorID == 0 {
		authorID = userID
	}
	author, err := s.userRepo.GetUserById(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	post, err := s.factory.CreatePost(ctx, author, req.PostType, req.Title, req.Content, req.Metadata)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, consts.PostEventCreated, post, "")
	return &dto.FactoryPostResultDTO{ID: post.ID, PostType: post.PostType}, nil
}

// UpdatePost 整体替换帖子内容，仅作者可操作
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !s.checker.Allow(userID, permission.MethodUpdate, post) {
		return nil, ErrForbidden
	}

	postType := postTypeOrDefault(postDTO.PostType)
	metadata := postDTO.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	if err = s.factory.Validate(postType, metadata); err != nil {
		return nil, err
	}

	previousType := post.PostType
	post.Title = postDTO.Title
	post.Content = postDTO.Content
	post.PostType = postType
	post.Metadata = metadata
	post.UpdatedAt = time.Now()

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	s.publish(ctx, consts.PostEventUpdated, post, previousType)
	return toPostDTO(post)
}

// DeletePost 删除帖子，仅作者可操作
func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !s.checker.Allow(userID, permission.MethodDelete, post) {
		return ErrForbidden
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	s.publish(ctx, consts.PostEventDeleted, post, "")
	return nil
}

// GetTypeStats 帖子类型计数，未出现的已注册类型补 0
func (s *postServiceImpl) GetTypeStats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(counts))
	for _, t := range s.factory.Types() {
		out[t] = 0
	}
	for t, n := range counts {
		out[t] = n
	}
	return out, nil
}

func (s *postServiceImpl) publish(ctx context.Context, eventType string, post *model.Post, previousType string) {
	publishPostEvent(ctx, s.publisher, eventType, post, previousType)
}

func postTypeOrDefault(postType string) string {
	if postType == "" {
		return model.PostTypeText
	}
	return postType
}

// toPostDTO 将 Model 转换为返回给前端的 DTO
func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.Author = dto.AuthorDTO{ID: post.UserID, Username: post.User.Username}
	out.Metadata = map[string]any(post.Metadata)
	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	return out, nil
}
