package cryptox_test

import (
	"strings"
	"testing"

	"github.com/rockpoolstays/innboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces PHC-format string", func(t *testing.T) {
		hash, err := cryptox.HashPassword("hunter2")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	})

	t.Run("salts are unique per call", func(t *testing.T) {
		h1, err := cryptox.HashPassword("hunter2")
		require.NoError(t, err)
		h2, err := cryptox.HashPassword("hunter2")
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("accepts matching password", func(t *testing.T) {
		require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		err := cryptox.VerifyPassword("wrong", hash)
		require.ErrorIs(t, err, cryptox.ErrMismatch)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		err := cryptox.VerifyPassword("", hash)
		require.ErrorIs(t, err, cryptox.ErrMismatch)
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		require.Error(t, cryptox.VerifyPassword("anything", "not-a-phc-string"))
	})

	t.Run("rejects non-argon2id hash", func(t *testing.T) {
		require.Error(t, cryptox.VerifyPassword("anything", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
	})
}
