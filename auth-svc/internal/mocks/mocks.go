package mocks

import (
	"context"
	"testing"

	"foodbites/auth-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t *testing.T) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) InsertUser(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(userID string) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByIdentifier(identifier string) (*domain.User, error) {
	args := m.Called(identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) UsernameOrEmailTaken(username, email, excludeID string) (bool, error) {
	args := m.Called(username, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) UpdateUser(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) UpdatePassword(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

func (m *UserRepository) DeleteUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

type GoogleVerifier struct {
	mock.Mock
}

func NewGoogleVerifier(t *testing.T) *GoogleVerifier {
	m := &GoogleVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GoogleVerifier) AuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *GoogleVerifier) Exchange(ctx context.Context, code string) (domain.GoogleProfile, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.GoogleProfile), args.Error(1)
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t *testing.T) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthServiceInterface) Register(username, email, password string) (string, error) {
	args := m.Called(username, email, password)
	return args.String(0), args.Error(1)
}

func (m *AuthServiceInterface) Login(identifier, password string) (string, error) {
	args := m.Called(identifier, password)
	return args.String(0), args.Error(1)
}

func (m *AuthServiceInterface) GoogleLogin(profile domain.GoogleProfile) (string, error) {
	args := m.Called(profile)
	return args.String(0), args.Error(1)
}

func (m *AuthServiceInterface) Profile(userID string) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AuthServiceInterface) UpdateProfile(userID, username, email string) (*domain.User, error) {
	args := m.Called(userID, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AuthServiceInterface) ChangePassword(userID, oldPassword, newPassword string) error {
	args := m.Called(userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *AuthServiceInterface) DeleteAccount(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}
