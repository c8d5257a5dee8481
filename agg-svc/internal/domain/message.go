package domain

import "time"

type OrderItem struct {
	FoodID   *string `json:"foodId"`
	Quantity int     `json:"quantity"`
}

type KafkaMessage struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}
