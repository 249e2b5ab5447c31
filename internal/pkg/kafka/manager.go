package kafka

import (
	"Marketplace/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic string

	dashboardConsumer sarama.ConsumerGroup
	dashboardHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, dashboardHandler sarama.ConsumerGroupHandler) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	dashboardConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaDashboardConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		topic:             cfg.KafkaDashboardConsumer.Topic,
		dashboardConsumer: dashboardConsumer,
		dashboardHandler:  dashboardHandler,
	}, nil
}

// Start 启动消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.dashboardConsumer.Errors() {
			log.Error("Dashboard consumer error", "err", err)
		}
	}()

	go func() {
		log.Info("Dashboard consumer started", "topic", m.topic)
		for {
			if err := m.dashboardConsumer.Consume(ctx, []string{m.topic}, m.dashboardHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.dashboardConsumer.Close(); err != nil {
		log.Error("Failed to close dashboard consumer", "err", err)
		return err
	}
	return nil
}
