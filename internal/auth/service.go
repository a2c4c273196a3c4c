package auth

import (
	"context"
	"strings"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/user"
)

type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByUsernameAndPassword(ctx context.Context, username, password string) (*user.User, error)
}

type LoginService interface {
	Authenticate(ctx context.Context, username, password *string) (AuthResult, error)
}

type loginService struct {
	users UserFinder
}

func NewService(users UserFinder) LoginService {
	return &loginService{users: users}
}

func (s *loginService) Authenticate(ctx context.Context, username, password *string) (AuthResult, error) {
	log := config.WithContext(ctx)

	if username == nil || password == nil {
		log.WithField("password_provided", password != nil).Warn("Invalid login request")
		return AuthResult{}, nil
	}

	name := strings.TrimSpace(*username)
	log = log.WithField("username", name)
	log.Debug("Authenticating user")

	u, err := s.users.FindByUsernameAndPassword(ctx, name, strings.TrimSpace(*password))
	if err != nil {
		log.WithError(err).Error("Failed to look up credentials")
		return AuthResult{}, err
	}
	if u != nil {
		log.Info("Authentication successful")
		return AuthResult{User: u, Authenticated: true}, nil
	}

	log.Warn("Authentication failed")
	existing, err := s.users.FindByUsername(ctx, name)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to diagnose authentication failure")
	case existing == nil:
		log.Warn("No user found with username")
	default:
		log.Warn("Password mismatch for username")
	}

	return AuthResult{}, nil
}
