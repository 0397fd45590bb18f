package jwtmanager

import (
	"testing"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, secret string) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(&config.InternalConfig{
		JWT: config.AppJWT{Secret: secret, ExpTimeInHour: 1},
	})
	require.NoError(t, err)
	return manager
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := newTestManager(t, "test-secret")

	token, err := manager.CreateToken(&models.Session{
		SessionID: "session-1",
		UserID:    "user-1",
		Role:      constvars.RoleParent,
	})
	require.NoError(t, err)

	session, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", session.SessionID)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, constvars.RoleParent, session.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestJWTManager_ParseToken_Rejects(t *testing.T) {
	manager := newTestManager(t, "test-secret")
	session := &models.Session{SessionID: "session-1", UserID: "user-1", Role: constvars.RoleParent}

	t.Run("Wrong Secret", func(t *testing.T) {
		other := newTestManager(t, "other-secret")
		token, err := other.CreateToken(session)
		require.NoError(t, err)

		_, err = manager.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := *session
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		token, err := manager.CreateToken(&expired)
		require.NoError(t, err)

		_, err = manager.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("None Algorithm", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id":    "user-1",
			"role":       constvars.RoleHealthcareProvider,
			"session_id": "session-1",
			"exp":        time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = manager.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := manager.ParseToken("")
		assert.Error(t, err)
	})
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{ExpTimeInHour: 1}})
	assert.Error(t, err)
}
