package kafka

import (
	"Connectly/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

// Producer 带熔断的帖子事件生产者
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	cb       *gobreaker.CircuitBreaker
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	p, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create kafka producer")
	}
	return newProducer(p, cfg.PostEvents.Topic), nil
}

func newProducer(p sarama.SyncProducer, topic string) *Producer {
	st := gobreaker.Settings{
		Name:        "Kafka-PostEvents",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("CircuitBreaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}
	return &Producer{
		producer: p,
		topic:    topic,
		cb:       gobreaker.NewCircuitBreaker(st),
	}
}

func (p *Producer) Publish(ctx context.Context, event *PostEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.PostID, 10)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(uuid.NewString())},
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		_, _, sendErr := p.producer.SendMessage(msg)
		return nil, sendErr
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.WarnContext(ctx, "post event dropped, circuit open", "type", event.Type, "post_id", event.PostID)
		}
		return pkgerrors.Wrap(err, "publish post event")
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
