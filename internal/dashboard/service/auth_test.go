package service_test

import (
	"context"
	"testing"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/internal/dashboard/store/drivers/sqlite"
	"github.com/rockpoolstays/innboard/pkg/cryptox"
	"github.com/rockpoolstays/innboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + t.TempDir() + "/innboard.db?_busy_timeout=5000"
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestVerifyCredentials(t *testing.T) {
	st := newTestStore(t)
	seeded := seedUser(t, st, "owner@rockpoolstays.com", "correct horse battery")

	svc := &service.AuthService{Store: st}
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.VerifyCredentials(ctx, "owner@rockpoolstays.com", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, seeded.ID, u.ID)
		require.Equal(t, seeded.Email, u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.VerifyCredentials(ctx, "owner@rockpoolstays.com", "wrong")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.VerifyCredentials(ctx, "nobody@rockpoolstays.com", "correct horse battery")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	// Unknown email and wrong password must be indistinguishable to a caller.
	t.Run("failure modes are indistinguishable", func(t *testing.T) {
		_, errUnknown := svc.VerifyCredentials(ctx, "nobody@rockpoolstays.com", "whatever")
		_, errWrong := svc.VerifyCredentials(ctx, "owner@rockpoolstays.com", "whatever")
		require.Equal(t, errUnknown, errWrong)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := svc.VerifyCredentials(ctx, "", "secret")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = svc.VerifyCredentials(ctx, "owner@rockpoolstays.com", "")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("email lookup is case sensitive", func(t *testing.T) {
		_, err := svc.VerifyCredentials(ctx, "Owner@rockpoolstays.com", "correct horse battery")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
