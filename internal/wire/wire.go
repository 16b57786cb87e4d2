package wire

import (
	"Connectly/internal/api"
	"Connectly/internal/api/config"
	"Connectly/internal/api/handler"
	"Connectly/internal/api/middleware"
	"Connectly/internal/job"
	"Connectly/internal/pkg/cron"
	"Connectly/internal/pkg/factory"
	"Connectly/internal/pkg/kafka"
	"Connectly/internal/pkg/permission"
	"Connectly/internal/pkg/redis"
	"Connectly/internal/pkg/security"
	"Connectly/internal/pkg/settings"
	"Connectly/internal/repository"
	"Connectly/internal/service"
	"fmt"
	"io"
	log "log/slog"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	Settings     settings.Store
	Publisher    kafka.PostEventPublisher
	KafkaManager *kafka.ConsumerManager // 未启用 Kafka 时为 nil
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, rdb *goredis.Client, cfg *config.Config, accessLog io.Writer) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepo(db)

	postFactory := factory.NewPostFactory(postRepo)
	for _, t := range cfg.Posts.ExtraTypes {
		postFactory.Register(t.Name, t.Required...)
		log.Info("Registered extra post type", "type", t.Name, "required", t.Required)
	}

	store, err := NewSettingsStore(cfg.Settings, rdb)
	if err != nil {
		return nil, err
	}

	stats := redis.NewPostTypeStats()
	statsHandler := kafka.NewPostStatsHandler(stats)

	var publisher kafka.PostEventPublisher
	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		kafkaMgr, err = kafka.NewConsumerManager(cfg.Kafka, statsHandler)
		if err != nil {
			_ = producer.Close()
			return nil, err
		}
		publisher = producer
	} else {
		publisher = kafka.NewLocalPublisher(statsHandler)
	}

	jwtManager := security.NewJWTManager(cfg.JWT)
	blacklist := redis.NewTokenBlacklist()

	userService := service.NewUserService(userRepo, jwtManager, blacklist, publisher)
	postService := service.NewPostService(postRepo, userRepo, postFactory, permission.PostOwnership{}, publisher, stats)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, permission.CommentOwnership{})

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		PostHandler:      handler.NewPostHandler(postService),
		CommentHandler:   handler.NewCommentHandler(commentService),
		ProtectedHandler: handler.NewProtectedHandler(),
		ConfigHandler:    handler.NewConfigHandler(store),
	}
	mws := &api.Middlewares{
		Auth:         middleware.AuthMiddleware(jwtManager, blacklist),
		AuthOptional: middleware.AuthOptionalMiddleware(jwtManager),
	}

	router := api.SetupRouter(handlers, mws, accessLog, cfg.Logger)

	cronMgr := cron.NewCronManager(cfg.Cron, job.NewPostStatsJob(postRepo, stats))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		Settings:     store,
		Publisher:    publisher,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}

// NewSettingsStore 按配置选择运行时配置存储
func NewSettingsStore(cfg config.SettingsConfig, rdb *goredis.Client) (settings.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return settings.NewMemoryStore(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("settings backend redis requires a redis client")
		}
		return settings.NewRedisStore(rdb, cfg.Key), nil
	default:
		return nil, fmt.Errorf("unsupported settings backend %q", cfg.Backend)
	}
}
