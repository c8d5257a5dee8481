package domain

// FoodItem is the catalog record a cart line points at. It mirrors the wire
// shape served by catalog-svc; the cart never looks the item up again.
type FoodItem struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// CartLine is one distinct food item and its quantity within a cart.
type CartLine struct {
	Item     FoodItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// CartView is the read snapshot handed to the HTTP layer. Any cart mutation
// invalidates it; callers recompute rather than cache across mutations.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Size  int        `json:"size"`
}

// OrderPayloadItem carries a nullable foodId: a line whose item lost its
// identifier is passed through as null, not rejected here.
type OrderPayloadItem struct {
	FoodID   *string `json:"foodId"`
	Quantity int     `json:"quantity"`
}

// OrderPayload is the projection submitted to the order service at checkout.
// It is built from one instant's cart snapshot and never observes later
// mutations.
type OrderPayload struct {
	Items       []OrderPayloadItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	Address     string             `json:"address"`
}
