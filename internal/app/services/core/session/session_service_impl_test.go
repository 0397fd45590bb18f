package session

import (
	"context"
	"testing"
	"time"

	"barangay-health-service/internal/app/contracts/mocks"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores With Remaining Lifetime", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		session := &models.Session{SessionID: "s1", UserID: "u1", Role: constvars.RoleParent, ExpiresAt: time.Now().Add(time.Hour)}
		redisRepo.On("Set", ctx, "session:s1", session, mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 59*time.Minute && ttl <= time.Hour
		})).Return(nil)

		err := NewSessionService(redisRepo).CreateSession(ctx, session)

		require.NoError(t, err)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Rejects Expired Session", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		session := &models.Session{SessionID: "s1", ExpiresAt: time.Now().Add(-time.Second)}

		err := NewSessionService(redisRepo).CreateSession(ctx, session)

		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set")
	})
}

func TestSessionService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		stored, err := json.Marshal(&models.Session{SessionID: "s1", UserID: "u1", Role: constvars.RoleNCDPatient})
		require.NoError(t, err)

		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", ctx, "session:s1").Return(string(stored), nil)

		session, err := NewSessionService(redisRepo).GetSession(ctx, "s1")

		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, constvars.RoleNCDPatient, session.Role)
	})

	t.Run("Missing", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", ctx, "session:s1").Return("", nil)

		session, err := NewSessionService(redisRepo).GetSession(ctx, "s1")

		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	redisRepo := new(mocks.RedisRepository)
	redisRepo.On("Delete", ctx, "session:s1").Return(nil)

	require.NoError(t, NewSessionService(redisRepo).DeleteSession(ctx, "s1"))
	redisRepo.AssertExpectations(t)
}
