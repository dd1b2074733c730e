package jwt

import (
	"testing"
	"time"

	"recipebox/domain"

	"github.com/stretchr/testify/require"
)

func TestTokenUserRoundTrip(t *testing.T) {
	svc := NewJWTServiceWithKey("test-secret")

	token := svc.GenerateTokenUser("user-123", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
	require.Equal(t, domain.RoleUser, role)
}

func TestTokenUserWrongKey(t *testing.T) {
	token := NewJWTServiceWithKey("test-secret").GenerateTokenUser("user-123", domain.RoleUser)

	_, _, err := NewJWTServiceWithKey("other-secret").GetUserIDByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenResetPassword(t *testing.T) {
	svc := NewJWTServiceWithKey("test-secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateTokenResetPassword(map[string]any{"email": "chef@example.com"}, time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateTokenResetPassword(token)
		require.NoError(t, err)
		require.Equal(t, "chef@example.com", claims["email"])
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateTokenResetPassword(map[string]any{"email": "chef@example.com"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateTokenResetPassword(token)
		require.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateTokenResetPassword("garbage")
		require.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
