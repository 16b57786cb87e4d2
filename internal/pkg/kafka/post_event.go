package kafka

import (
	"context"
	"time"
)

// PostEvent 帖子生命周期事件
type PostEvent struct {
	Type         string    `json:"type"`
	PostID       uint64    `json:"post_id"`
	AuthorID     uint64    `json:"author_id"`
	PostType     string    `json:"post_type"`
	PreviousType string    `json:"previous_type,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// PostEventPublisher 发布帖子事件，调用方不依赖发布结果
type PostEventPublisher interface {
	Publish(ctx context.Context, event *PostEvent) error
	Close() error
}

// LocalPublisher 未启用 Kafka 时直接在进程内应用事件
type LocalPublisher struct {
	handler *PostStatsHandler
}

func NewLocalPublisher(handler *PostStatsHandler) *LocalPublisher {
	return &LocalPublisher{handler: handler}
}

func (p *LocalPublisher) Publish(ctx context.Context, event *PostEvent) error {
	return p.handler.Apply(ctx, event)
}

func (p *LocalPublisher) Close() error {
	return nil
}
