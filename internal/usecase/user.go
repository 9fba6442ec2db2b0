package usecase

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"covidhelp/internal/domain"
	"covidhelp/internal/repository"
)

// AuthService handles local credential registration and login.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an identity with a bcrypt credential hash. The store's
// unique index decides handle ownership, so concurrent registrations of the
// same handle cannot both succeed.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("failed to hash password")
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies a username/password pair. An unknown handle and a wrong
// password both come back as domain.ErrInvalidCredential.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredential
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredential
	}
	return user, nil
}
