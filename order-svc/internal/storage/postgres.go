package storage

import (
	"database/sql"

	"foodbites/order-svc/internal/domain"
	"foodbites/order-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (id, user_id, total_amount, address, status, qr_code)
		VALUES ($1, $2, $3, $4, $5, NULL)
		RETURNING created_at
	`, order.ID, order.UserID, order.TotalAmount, order.Address, order.Status).Scan(&order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, food_id, quantity)
			VALUES ($1, $2, $3)
		`, order.ID, item.FoodID, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID string) (*domain.Order, []domain.OrderItem, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, user_id, total_amount, address, status, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.Address, &order.Status, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	items, err := r.orderItems(orderID)
	if err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

func (r *PostgresRepository) ListUserOrders(userID string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, total_amount, address, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.Address, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT food_id, quantity
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.FoodID, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) SaveQRCode(orderID string, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, service.ErrOrderNotFound
	}
	return qr, err
}

var _ service.OrderRepository = (*PostgresRepository)(nil)
