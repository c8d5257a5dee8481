package domain

type FoodAnalytics struct {
	FoodID     string  `json:"food_id"`
	FoodName   string  `json:"food_name"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	OrderCount int     `json:"order_count"`
}
