package kafka

import (
	"context"
	"errors"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

var ErrEmptyCanalData = errors.New("canal message data is empty")

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// batcher 攒批消费，批内并发处理，整批结束后提交最后一条位点
type batcher struct {
	size        int
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration
	maxBackoff  time.Duration
}

func defaultBatcher() *batcher {
	return &batcher{
		size:        32,
		timeout:     time.Second,
		maxAttempts: 5,
		backoff:     100 * time.Millisecond,
		maxBackoff:  5 * time.Second,
	}
}

// run 阻塞直到 claim 关闭或 session 结束
func (b *batcher) run(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, b.size)
	ticker := time.NewTicker(b.timeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		b.process(session, batch, logic)
		batch = batch[:0]
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= b.size {
				flush()
				ticker.Reset(b.timeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

func (b *batcher) process(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	ctx := session.Context()

	var wg sync.WaitGroup
	for _, msg := range messages {
		wg.Add(1)
		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			b.handleWithRetry(ctx, m, logic)
		}(msg)
	}
	wg.Wait()

	// 会话已结束时不提交，交给下一次 rebalance 重新消费
	if ctx.Err() != nil {
		return
	}
	session.MarkMessage(messages[len(messages)-1], "")
	session.Commit()
}

// handleWithRetry 指数退避重试，超过 maxAttempts 后丢弃该条消息
func (b *batcher) handleWithRetry(ctx context.Context, m *sarama.ConsumerMessage, logic LogicFunc) {
	wait := b.backoff
	for attempt := 1; ; attempt++ {
		err := logic(ctx, m)
		if err == nil {
			return
		}
		if attempt >= b.maxAttempts {
			log.ErrorContext(ctx, "drop message after retries",
				"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "attempts", attempt, "err", err)
			return
		}
		log.WarnContext(ctx, "process message error",
			"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait = min(wait*2, b.maxBackoff)
	}
}

// ToCanalMessage 将kafka消息转换为canal消息结构体
func ToCanalMessage(msg *sarama.ConsumerMessage) (*CanalMessage, error) {
	var canalMsg CanalMessage
	if err := json.Unmarshal(msg.Value, &canalMsg); err != nil {
		return nil, err
	}
	if len(canalMsg.Data) == 0 {
		return nil, ErrEmptyCanalData
	}
	return &canalMsg, nil
}
