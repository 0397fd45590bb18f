package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts/mocks"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/app/services/shared/jwtmanager"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	userRepo       *mocks.UserRepository
	sessionService *mocks.SessionService
	loginLimiter   *mocks.ResourceLimiter
	usecase        *authUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	internalConfig := &config.InternalConfig{
		JWT:  config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
		Auth: config.AppAuth{BcryptCost: bcrypt.MinCost, LoginMaxAttempts: 5, LoginWindowInSeconds: 60},
	}
	tokenManager, err := jwtmanager.NewJWTManager(internalConfig)
	require.NoError(t, err)

	userRepo := new(mocks.UserRepository)
	sessionService := new(mocks.SessionService)
	loginLimiter := new(mocks.ResourceLimiter)
	usecase := NewAuthUsecase(userRepo, sessionService, tokenManager, loginLimiter, internalConfig, zap.NewNop()).(*authUsecase)

	return &authFixture{userRepo: userRepo, sessionService: sessionService, loginLimiter: loginLimiter, usecase: usecase}
}

func (f *authFixture) allowLogins() {
	f.loginLimiter.On("Allow", mock.Anything, constvars.LoginLimiterGroup, mock.Anything, time.Minute, 5).Return(true, time.Duration(0), nil)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Parent Registers And Receives Token", func(t *testing.T) {
		f := newAuthFixture(t)
		request := &requests.RegisterUser{
			Email:     "alice@example.com",
			Password:  "secret1",
			Role:      constvars.RoleParent,
			FirstName: "Alice",
			LastName:  "Reyes",
		}
		f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, nil)
		f.userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Password != "secret1" && utils.CheckPasswordHash("secret1", u.Password) && u.FacilityName == ""
		})).Return("user-1", nil)
		f.sessionService.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

		response, err := f.usecase.Register(ctx, request)

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "user-1", response.User.ID)
		assert.Equal(t, constvars.RoleParent, response.User.Role)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&models.User{ID: "user-1"}, nil)

		_, err := f.usecase.Register(ctx, &requests.RegisterUser{
			Email: "alice@example.com", Password: "secret1", Role: constvars.RoleParent,
		})

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		f.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email Lost On Insert", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, nil)
		f.userRepo.On("CreateUser", ctx, mock.Anything).Return("", exceptions.ErrEmailAlreadyExist(errors.New("E11000")))

		_, err := f.usecase.Register(ctx, &requests.RegisterUser{
			Email: "alice@example.com", Password: "secret1", Role: constvars.RoleParent,
		})

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		f.sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("Provider Without Facility", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.usecase.Register(ctx, &requests.RegisterUser{
			Email: "doc@example.com", Password: "secret1", Role: constvars.RoleHealthcareProvider,
		})

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		f.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Provider Keeps Facility", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("FindByEmail", ctx, "doc@example.com").Return(nil, nil)
		f.userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.FacilityName == "Barangay Health Center"
		})).Return("user-2", nil)
		f.sessionService.On("CreateSession", ctx, mock.Anything).Return(nil)

		response, err := f.usecase.Register(ctx, &requests.RegisterUser{
			Email: "doc@example.com", Password: "secret1", Role: constvars.RoleHealthcareProvider,
			FacilityName: "Barangay Health Center",
		})

		require.NoError(t, err)
		assert.Equal(t, "Barangay Health Center", response.User.FacilityName)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: "user-1", Email: "alice@example.com", Password: hashed, Role: constvars.RoleParent}

	t.Run("Valid Credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		f.allowLogins()
		f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(stored, nil)
		f.sessionService.On("CreateSession", ctx, mock.Anything).Return(nil)

		response, err := f.usecase.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "user-1", response.User.ID)
	})

	t.Run("Unknown Email And Wrong Password Are Identical", func(t *testing.T) {
		f := newAuthFixture(t)
		f.allowLogins()
		f.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)
		f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(stored, nil)

		_, unknownErr := f.usecase.Login(ctx, &requests.LoginUser{Email: "ghost@example.com", Password: "secret1"})
		_, wrongErr := f.usecase.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "nope"})

		var unknownCustom, wrongCustom *exceptions.CustomError
		require.ErrorAs(t, unknownErr, &unknownCustom)
		require.ErrorAs(t, wrongErr, &wrongCustom)
		assert.Equal(t, http.StatusUnauthorized, unknownCustom.StatusCode)
		assert.Equal(t, unknownCustom.StatusCode, wrongCustom.StatusCode)
		assert.Equal(t, unknownCustom.ClientMessage, wrongCustom.ClientMessage)
		f.sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("Attempts Exhausted", func(t *testing.T) {
		f := newAuthFixture(t)
		f.loginLimiter.On("Allow", ctx, constvars.LoginLimiterGroup, "alice@example.com", time.Minute, 5).Return(false, 42*time.Second, nil)

		_, err := f.usecase.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "secret1"})

		assert.Equal(t, http.StatusTooManyRequests, statusOf(t, err))
		f.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Limiter Failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.loginLimiter.On("Allow", ctx, constvars.LoginLimiterGroup, "alice@example.com", time.Minute, 5).Return(false, time.Duration(0), exceptions.ErrRedisIncrement(errors.New("redis down")))

		_, err := f.usecase.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "secret1"})

		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})
}

func TestAuthUsecase_VerifyTokenAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	var created *models.Session
	f.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, nil)
	f.userRepo.On("CreateUser", ctx, mock.Anything).Return("user-1", nil)
	f.sessionService.On("CreateSession", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Session)
	}).Return(nil)

	response, err := f.usecase.Register(ctx, &requests.RegisterUser{
		Email: "alice@example.com", Password: "secret1", Role: constvars.RoleParent,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	t.Run("Active Session Resolves Actor", func(t *testing.T) {
		f.sessionService.On("GetSession", ctx, created.SessionID).Return(created, nil).Once()

		actor, err := f.usecase.VerifyToken(ctx, response.Token)

		require.NoError(t, err)
		assert.Equal(t, "user-1", actor.UserID)
		assert.Equal(t, constvars.RoleParent, actor.Role)
		assert.Equal(t, created.SessionID, actor.SessionID)
	})

	t.Run("Logout Revokes Token", func(t *testing.T) {
		f.sessionService.On("DeleteSession", ctx, created.SessionID).Return(nil).Once()
		f.sessionService.On("GetSession", ctx, created.SessionID).Return(nil, nil).Once()

		require.NoError(t, f.usecase.Logout(ctx, &models.Actor{UserID: "user-1", SessionID: created.SessionID}))
		_, err := f.usecase.VerifyToken(ctx, response.Token)

		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Tampered Token", func(t *testing.T) {
		_, err := f.usecase.VerifyToken(ctx, response.Token+"x")

		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}
