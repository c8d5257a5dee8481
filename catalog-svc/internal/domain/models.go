package domain

import "time"

type Food struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Emoji       string    `json:"emoji,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
