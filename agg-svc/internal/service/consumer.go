package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"foodbites/agg-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "order_placed" {
			c.ProcessOrder(msg)
		}
	}
}

func (c *Consumer) ProcessOrder(msg domain.KafkaMessage) {
	if msg.Type != "order_placed" {
		return
	}
	log.Printf("Processing order: OrderID=%s, items=%d", msg.OrderID, len(msg.Items))

	for _, item := range msg.Items {
		if item.FoodID == nil || *item.FoodID == "" {
			continue
		}

		if err := c.Store.IncrementOrderCount(*item.FoodID, item.Quantity); err != nil {
			log.Printf("Error updating order count for food %s: %v", *item.FoodID, err)
			continue
		}

		if err := c.Store.BumpPopularity(*item.FoodID, item.Quantity); err != nil {
			log.Printf("Error updating popularity for food %s: %v", *item.FoodID, err)
			continue
		}
	}

	log.Printf("Successfully processed order %s", msg.OrderID)
}

var _ ConsumerInterface = (*Consumer)(nil)
