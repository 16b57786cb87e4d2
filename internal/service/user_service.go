package service

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/pkg/consts"
	"Connectly/internal/model"
	"Connectly/internal/pkg/kafka"
	"Connectly/internal/pkg/security"
	"Connectly/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
)

// TokenIssuer 登录成功后签发 Token
type TokenIssuer interface {
	GenerateToken(userID uint64, username string) (string, error)
	Expiration() time.Duration
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo  repository.UserRepo
	tokens    TokenIssuer
	blacklist security.Blacklist
	publisher kafka.PostEventPublisher
}

func NewUserService(
	userRepo repository.UserRepo,
	tokens TokenIssuer,
	blacklist security.Blacklist,
	publisher kafka.PostEventPublisher,
) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
		publisher: publisher,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// equalizeTiming 用户不存在时也做一次哈希比较，避免通过耗时区分用户名是否存在
func equalizeTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = security.HashPassword("connectly-dummy-password")
	})
	_ = security.CheckPasswordHash(password, dummyHash)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserDTO, 0, len(users))
	if err = copier.Copy(&out, &users); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	regDTO.Username = strings.TrimSpace(regDTO.Username)
	regDTO.Email = strings.TrimSpace(regDTO.Email)

	verr := &ValidationError{}
	existing, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		verr.Add("username", MsgUsernameTaken)
	}
	existing, err = s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		verr.Add("email", MsgEmailTaken)
	}
	if err = verr.OrNil(); err != nil {
		return nil, err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: regDTO.Username,
		Email:    regDTO.Email,
		Password: passwordHash,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			if dup.Field == "email" {
				return nil, NewValidationError("email", MsgEmailTaken)
			}
			return nil, NewValidationError("username", MsgUsernameTaken)
		}
		return nil, err
	}

	log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return toUserDTO(user)
}

// Login 用户不存在与密码错误返回同一个错误
func (s *UserServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, error) {
	if credential.Username == "" || credential.Password == "" {
		equalizeTiming(credential.Password)
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, credential.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		equalizeTiming(credential.Password)
		return "", ErrInvalidCredentials
	}

	if err = security.CheckPasswordHash(credential.Password, user.Password); err != nil {
		if !errors.Is(err, security.ErrPasswordMismatch) {
			log.WarnContext(ctx, "password hash check failed", "user_id", user.ID, "err", err)
		}
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.ID, user.Username)
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return s.blacklist.Revoke(ctx, signature, s.tokens.Expiration())
}

// DeleteUser 注销用户，级联删除帖子与评论，并为每篇被删帖子发布删除事件
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	posts, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	for _, post := range posts {
		publishPostEvent(ctx, s.publisher, consts.PostEventDeleted, post, "")
	}
	log.InfoContext(ctx, "user deleted", "user_id", id, "posts", len(posts))
	return nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	out := &dto.UserDTO{}
	if err := copier.Copy(out, user); err != nil {
		return nil, err
	}
	return out, nil
}
