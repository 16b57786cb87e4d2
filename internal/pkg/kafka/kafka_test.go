package kafka

import (
	"Connectly/internal/pkg/consts"
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStats struct {
	counts map[string]int64
	err    error
}

func (m *memStats) Incr(_ context.Context, postType string, delta int64) error {
	if m.err != nil {
		return m.err
	}
	if m.counts == nil {
		m.counts = map[string]int64{}
	}
	m.counts[postType] += delta
	return nil
}

func TestPostStatsHandlerApply(t *testing.T) {
	ctx := context.Background()
	stats := &memStats{}
	h := NewPostStatsHandler(stats)

	require.NoError(t, h.Apply(ctx, &PostEvent{Type: consts.PostEventCreated, PostType: "image"}))
	require.NoError(t, h.Apply(ctx, &PostEvent{Type: consts.PostEventCreated, PostType: "image"}))
	require.NoError(t, h.Apply(ctx, &PostEvent{Type: consts.PostEventCreated, PostType: "text"}))
	require.NoError(t, h.Apply(ctx, &PostEvent{Type: consts.PostEventUpdated, PostType: "video", PreviousType: "image"}))
	require.NoError(t, h.Apply(ctx, &PostEvent{Type: consts.PostEventUpdated, PostType: "text", PreviousType: "text"}))
	require.NoError(t, h.Apply(ctx, &PostEvent{Type: consts.PostEventDeleted, PostType: "text"}))
	require.NoError(t, h.Apply(ctx, &PostEvent{Type: "post.liked", PostType: "text"}))

	assert.Equal(t, map[string]int64{"image": 1, "video": 1, "text": 0}, stats.counts)
}

func TestPostStatsHandlerLogicSkipsPoisonMessages(t *testing.T) {
	stats := &memStats{}
	h := NewPostStatsHandler(stats)

	err := h.logic(context.Background(), &sarama.ConsumerMessage{Value: []byte("{not json")})
	assert.NoError(t, err)
	assert.Empty(t, stats.counts)

	raw, _ := json.Marshal(&PostEvent{Type: consts.PostEventCreated, PostType: "video"})
	require.NoError(t, h.logic(context.Background(), &sarama.ConsumerMessage{Value: raw}))
	assert.Equal(t, int64(1), stats.counts["video"])
}

func TestLocalPublisher(t *testing.T) {
	stats := &memStats{}
	p := NewLocalPublisher(NewPostStatsHandler(stats))

	require.NoError(t, p.Publish(context.Background(), &PostEvent{Type: consts.PostEventCreated, PostType: "text"}))
	assert.Equal(t, int64(1), stats.counts["text"])
	assert.NoError(t, p.Close())
}

func TestProducerPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev PostEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Type != consts.PostEventCreated || ev.PostID != 3 {
			return errors.New("unexpected event")
		}
		return nil
	})

	p := newProducer(sp, "posts")
	require.NoError(t, p.Publish(context.Background(), &PostEvent{Type: consts.PostEventCreated, PostID: 3, PostType: "text"}))
	require.NoError(t, p.Close())
}

func TestProducerCircuitOpensAfterFailures(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	for i := 0; i < 5; i++ {
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}

	p := newProducer(sp, "posts")
	for i := 0; i < 5; i++ {
		assert.Error(t, p.Publish(context.Background(), &PostEvent{Type: consts.PostEventCreated, PostID: 1}))
	}

	// 熔断打开后不再调用底层生产者
	err := p.Publish(context.Background(), &PostEvent{Type: consts.PostEventCreated, PostID: 1})
	assert.Error(t, err)
	require.NoError(t, p.Close())
}
