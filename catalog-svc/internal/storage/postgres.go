package storage

import (
	"database/sql"
	"strings"

	"foodbites/catalog-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateFood(food *domain.Food) error {
	return r.DB.QueryRow(`
		INSERT INTO foods (id, name, price, category, description, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, food.ID, food.Name, food.Price, food.Category, food.Description, food.Image).
		Scan(&food.CreatedAt)
}

func (r *PostgresRepository) ListFoods(search string) ([]domain.Food, error) {
	query := `
		SELECT id, name, price, COALESCE(category, ''), COALESCE(description, ''), COALESCE(image, ''), created_at
		FROM foods`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE LOWER(name) LIKE $1 OR LOWER(category) LIKE $1`
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		var f domain.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Price, &f.Category, &f.Description, &f.Image, &f.CreatedAt); err != nil {
			continue
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) GetFood(id string) (*domain.Food, error) {
	var f domain.Food
	err := r.DB.QueryRow(`
		SELECT id, name, price, COALESCE(category, ''), COALESCE(description, ''), COALESCE(image, ''), created_at
		FROM foods
		WHERE id = $1
	`, id).Scan(&f.ID, &f.Name, &f.Price, &f.Category, &f.Description, &f.Image, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresRepository) UpdateFood(food *domain.Food) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE foods
		SET name = $1, price = $2, category = $3, description = $4, image = $5
		WHERE id = $6
	`, food.Name, food.Price, food.Category, food.Description, food.Image, food.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteFood(id string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
