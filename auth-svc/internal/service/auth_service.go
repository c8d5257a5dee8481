package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodbites/auth-svc/internal/domain"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

const tokenTTL = 72 * time.Hour

type AuthService struct {
	repository UserRepository
	jwtSecret  []byte
}

func NewAuthService(repository UserRepository, jwtSecret string) *AuthService {
	return &AuthService{repository: repository, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}

	taken, err := s.repository.UsernameOrEmailTaken(username, email, "")
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Provider:     "local",
	}
	if err := s.repository.InsertUser(user); err != nil {
		return "", err
	}
	return s.issueToken(user.ID)
}

func (s *AuthService) Login(identifier, password string) (string, error) {
	user, err := s.repository.GetByIdentifier(strings.TrimSpace(identifier))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(user.ID)
}

// GoogleLogin upserts the account tied to the verified Google email and
// issues a token for it.
func (s *AuthService) GoogleLogin(profile domain.GoogleProfile) (string, error) {
	email := strings.ToLower(profile.Email)
	if email == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.repository.GetByEmail(email)
	if err != nil {
		user = &domain.User{
			ID:       uuid.NewString(),
			Username: profile.Name,
			Email:    email,
			Provider: "google",
		}
		if user.Username == "" {
			user.Username = email
		}
		if err := s.repository.InsertUser(user); err != nil {
			return "", err
		}
	}
	return s.issueToken(user.ID)
}

func (s *AuthService) Profile(userID string) (*domain.User, error) {
	return s.repository.GetByID(userID)
}

func (s *AuthService) UpdateProfile(userID, username, email string) (*domain.User, error) {
	user, err := s.repository.GetByID(userID)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" && email == "" {
		return user, nil
	}
	if username == "" {
		username = user.Username
	}
	if email == "" {
		email = user.Email
	}

	taken, err := s.repository.UsernameOrEmailTaken(username, email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUser
	}

	user.Username = username
	user.Email = email
	if err := s.repository.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.repository.GetByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repository.UpdatePassword(userID, string(hash))
}

func (s *AuthService) DeleteAccount(userID string) error {
	return s.repository.DeleteUser(userID)
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

var _ AuthServiceInterface = (*AuthService)(nil)
