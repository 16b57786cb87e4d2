package kafka

import (
	"Connectly/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// StatsIncrementer 帖子类型计数
type StatsIncrementer interface {
	Incr(ctx context.Context, postType string, delta int64) error
}

// PostStatsHandler 消费帖子事件，维护按类型的帖子计数
type PostStatsHandler struct {
	stats StatsIncrementer
}

func NewPostStatsHandler(stats StatsIncrementer) *PostStatsHandler {
	return &PostStatsHandler{stats: stats}
}

func (s *PostStatsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post stats consumer setup")
	return nil
}

func (s *PostStatsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post stats consumer cleanup")
	return nil
}

func (s *PostStatsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	if err := pullMessageBatch(session, claim, s.logic); err != nil {
		log.Error("post events process batch error", "err", err)
		return err
	}
	return nil
}

func (s *PostStatsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event PostEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 无法解析的消息直接跳过，避免阻塞分区
		log.Error("unmarshal post event error", "err", err, "offset", msg.Offset)
		return nil
	}
	return s.Apply(ctx, &event)
}

// Apply 根据事件调整计数
func (s *PostStatsHandler) Apply(ctx context.Context, event *PostEvent) error {
	switch event.Type {
	case consts.PostEventCreated:
		return s.stats.Incr(ctx, event.PostType, 1)
	case consts.PostEventDeleted:
		return s.stats.Incr(ctx, event.PostType, -1)
	case consts.PostEventUpdated:
		if event.PreviousType == "" || event.PreviousType == event.PostType {
			return nil
		}
		if err := s.stats.Incr(ctx, event.PreviousType, -1); err != nil {
			return err
		}
		return s.stats.Incr(ctx, event.PostType, 1)
	default:
		log.WarnContext(ctx, "unknown post event type", "type", event.Type)
		return nil
	}
}
