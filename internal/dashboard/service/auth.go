package service

import (
	"context"
	"errors"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/pkg/cryptox"
)

// ErrInvalidCredentials is the single failure for every credential problem.
// Callers must not be able to tell an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// AuthService verifies login credentials against the identity store.
type AuthService struct {
	Store store.Store
}

// VerifyCredentials looks up the identity by email and checks the password
// against the stored argon2id hash. It returns the identity on success and
// ErrInvalidCredentials for any credential failure; other errors are real
// infrastructure faults.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}
