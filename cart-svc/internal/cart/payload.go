package cart

import (
	"errors"
	"strings"

	"foodbites/cart-svc/internal/domain"
)

var ErrEmptyAddress = errors.New("please enter a valid delivery address")

// BuildOrderPayload projects the store's current lines plus a delivery
// address into the order submission payload. The only validation at this
// layer is the address; a line with no identifier maps to a null foodId and
// is left for the order service to judge.
func BuildOrderPayload(s *Store, address string) (*domain.OrderPayload, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, ErrEmptyAddress
	}

	lines := s.Lines()
	items := make([]domain.OrderPayloadItem, 0, len(lines))
	for _, line := range lines {
		var foodID *string
		if line.Item.ID != "" {
			id := line.Item.ID
			foodID = &id
		}
		items = append(items, domain.OrderPayloadItem{FoodID: foodID, Quantity: line.Quantity})
	}

	return &domain.OrderPayload{
		Items:       items,
		TotalAmount: s.Total(),
		Address:     trimmed,
	}, nil
}
