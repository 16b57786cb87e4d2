package kafka

import (
	"Connectly/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	pkgerrors "github.com/pkg/errors"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic        string
	postConsumer sarama.ConsumerGroup
	postHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg config.KafkaConfig, postHandler *PostStatsHandler) (*ConsumerManager, error) {
	postConsumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.PostEvents.GroupID, newSaramaConfig(cfg))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create post events consumer group")
	}

	return &ConsumerManager{
		topic:        cfg.PostEvents.Topic,
		postConsumer: postConsumer,
		postHandler:  postHandler,
	}, nil
}

// Start 阻塞消费直到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context) error {
	log.Info("Post events consumer started", "topic", m.topic)
	defer func() {
		if err := m.postConsumer.Close(); err != nil {
			log.Error("close post events consumer failed", "err", err)
		}
	}()

	go func() {
		for err := range m.postConsumer.Errors() {
			log.Error("post events consumer error", "err", err)
		}
	}()

	for {
		if err := m.postConsumer.Consume(ctx, []string{m.topic}, m.postHandler); err != nil {
			log.Error("Error from consumer", "err", err)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
