package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"agroflow/internal/pkg/config"
	"agroflow/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, topic string) (*Producer, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &Producer{
		log:      kafkaLog,
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
