package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"foodbites/order-svc/internal/domain"
	"foodbites/order-svc/internal/service"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, msg domain.KafkaMessage) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: payload,
	})
}

var _ service.OrderPublisher = (*KafkaPublisher)(nil)
