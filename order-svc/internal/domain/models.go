package domain

import "time"

type Order struct {
	ID          string      `json:"_id"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Address     string      `json:"address"`
	Status      string      `json:"status"`
	QRLink      string      `json:"qrLink,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OrderItem mirrors the checkout payload line. FoodID stays nullable so a
// null foodId from the client ends up as NULL in storage.
type OrderItem struct {
	FoodID   *string `json:"foodId"`
	Quantity int     `json:"quantity"`
}

// IncomingOrder is the body of a placement request.
type IncomingOrder struct {
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Address     string      `json:"address"`
}

type KafkaMessage struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}
