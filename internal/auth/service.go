package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/prasetyo/kasrt/internal/group"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// Service authenticates users against the group membership roster and issues
// session tokens.
type Service struct {
	groups *group.Service
	tokens *JWTManager
}

func NewService(groups *group.Service, tokens *JWTManager) *Service {
	return &Service{groups: groups, tokens: tokens}
}

// Register creates a user account with a hashed password. New members join as
// residents unless a role is given.
func (s *Service) Register(ctx context.Context, params group.RegisterUserParams, password string) (*group.User, error) {
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	if existing, err := s.groups.UserByEmail(ctx, params.Email); err == nil && existing != nil {
		return nil, ErrEmailExists
	} else if err != nil && !errors.Is(err, group.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	params.PasswordHash = string(hash)

	return s.groups.RegisterUser(ctx, params)
}

// Login verifies the credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *group.User, error) {
	u, err := s.groups.UserByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}
