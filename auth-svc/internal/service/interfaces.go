package service

import "foodbites/auth-svc/internal/domain"

type AuthServiceInterface interface {
	Register(username, email, password string) (string, error)
	Login(identifier, password string) (string, error)
	GoogleLogin(profile domain.GoogleProfile) (string, error)
	Profile(userID string) (*domain.User, error)
	UpdateProfile(userID, username, email string) (*domain.User, error)
	ChangePassword(userID, oldPassword, newPassword string) error
	DeleteAccount(userID string) error
}

type UserRepository interface {
	InsertUser(user *domain.User) error
	GetByID(userID string) (*domain.User, error)
	GetByIdentifier(identifier string) (*domain.User, error)
	GetByEmail(email string) (*domain.User, error)
	UsernameOrEmailTaken(username, email, excludeID string) (bool, error)
	UpdateUser(user *domain.User) error
	UpdatePassword(userID, passwordHash string) error
	DeleteUser(userID string) error
}
