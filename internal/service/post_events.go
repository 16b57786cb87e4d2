package service

import (
	"Connectly/internal/model"
	"Connectly/internal/pkg/kafka"
	"context"
	log "log/slog"
	"time"
)

// publishPostEvent 事件发布失败只记录日志，不影响请求结果
func publishPostEvent(ctx context.Context, publisher kafka.PostEventPublisher, eventType string, post *model.Post, previousType string) {
	event := &kafka.PostEvent{
		Type:         eventType,
		PostID:       post.ID,
		AuthorID:     post.UserID,
		PostType:     post.PostType,
		PreviousType: previousType,
		OccurredAt:   time.Now(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WarnContext(ctx, "publish post event failed", "type", eventType, "post_id", post.ID, "err", err)
	}
}
