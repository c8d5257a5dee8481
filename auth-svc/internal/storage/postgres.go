package storage

import (
	"database/sql"

	"foodbites/auth-svc/internal/domain"
	"foodbites/auth-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) InsertUser(user *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (id, username, email, password_hash, provider)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.Provider).Scan(&user.CreatedAt)
}

func (r *PostgresRepository) GetByID(userID string) (*domain.User, error) {
	return r.getUser(`WHERE id = $1`, userID)
}

func (r *PostgresRepository) GetByIdentifier(identifier string) (*domain.User, error) {
	return r.getUser(`WHERE username = $1 OR email = LOWER($1)`, identifier)
}

func (r *PostgresRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getUser(`WHERE email = $1`, email)
}

func (r *PostgresRepository) getUser(where string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, email, password_hash, provider, created_at
		FROM users `+where, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Provider, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, service.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) UsernameOrEmailTaken(username, email, excludeID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM users
			WHERE (username = $1 OR email = $2) AND id <> $3
		)
	`, username, email, excludeID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) UpdateUser(user *domain.User) error {
	result, err := r.DB.Exec(`
		UPDATE users SET username = $1, email = $2 WHERE id = $3
	`, user.Username, user.Email, user.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdatePassword(userID, passwordHash string) error {
	result, err := r.DB.Exec(`
		UPDATE users SET password_hash = $1 WHERE id = $2
	`, passwordHash, userID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteUser(userID string) error {
	result, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrUserNotFound
	}
	return nil
}

var _ service.UserRepository = (*PostgresRepository)(nil)
