package logic

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorkZen2025/workzen-app/config"
)

func TestLogin(t *testing.T) {
	config.GlobalConfig.Auth.Secret = "test-secret"
	config.GlobalConfig.Auth.ExpHour = 1

	store := newTestStore(t)
	sessions := NewSessionManager()
	userLogic := NewUserLogic(store.userDAO, sessions)

	t.Run("empty name is rejected", func(t *testing.T) {
		_, _, _, _, err := userLogic.Login("   ")
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("login resolves the same identity each time", func(t *testing.T) {
		user1, session1, token1, _, err := userLogic.Login("Alice")
		require.NoError(t, err)
		require.NotEmpty(t, token1)

		user2, session2, _, _, err := userLogic.Login("Alice")
		require.NoError(t, err)

		assert.Equal(t, user1.ID, user2.ID)
		assert.NotEqual(t, session1.ID, session2.ID, "each login opens a fresh session")
	})

	t.Run("token carries user and session", func(t *testing.T) {
		user, session, tokenString, _, err := userLogic.Login("Bob")
		require.NoError(t, err)

		token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
			return []byte(config.GlobalConfig.Auth.Secret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(user.ID), claims["user_id"])
		assert.Equal(t, session.ID.String(), claims["session_id"])
	})

	t.Run("logout destroys the session", func(t *testing.T) {
		_, session, _, _, err := userLogic.Login("Carol")
		require.NoError(t, err)

		got, err := userLogic.GetSession(session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)

		userLogic.Logout(session.ID)
		_, err = userLogic.GetSession(session.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
