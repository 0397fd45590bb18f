package auth

import (
	"context"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/dto/responses"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	TokenManager   contracts.TokenManager
	LoginLimiter   contracts.ResourceLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	tokenManager contracts.TokenManager,
	loginLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		TokenManager:   tokenManager,
		LoginLimiter:   loginLimiter,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	if !models.IsValidRole(request.Role) {
		return nil, exceptions.ErrInputValidation(nil)
	}
	if request.Role == constvars.RoleHealthcareProvider && request.FacilityName == "" {
		uc.Log.Error("authUsecase.Register missing facility name for provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMissingRequiredField(request.Role, "facilityName")
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		uc.Log.Error("authUsecase.Register email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password, uc.InternalConfig.Auth.BcryptCost)
	if err != nil {
		uc.Log.Error("authUsecase.Register error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:       request.Email,
		Password:    hashedPassword,
		Role:        request.Role,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		PhoneNumber: request.PhoneNumber,
	}
	if request.Role == constvars.RoleHealthcareProvider {
		user.FacilityName = request.FacilityName
	}
	user.SetCreatedAtUpdatedAt()

	// a concurrent registration that loses the unique index race surfaces here
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID = userID

	response, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return response, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	allowed, retryAfter, err := uc.LoginLimiter.Allow(
		ctx,
		constvars.LoginLimiterGroup,
		request.Email,
		time.Duration(uc.InternalConfig.Auth.LoginWindowInSeconds)*time.Second,
		uc.InternalConfig.Auth.LoginMaxAttempts,
	)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling LoginLimiter.Allow",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !allowed {
		uc.Log.Warn("authUsecase.Login attempts exhausted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingRetryAfterKey, retryAfter),
		)
		return nil, exceptions.ErrTooManyRequests()
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// unknown email and wrong password must be indistinguishable to the caller
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	response, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, actor *models.Actor) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if actor == nil {
		return exceptions.ErrTokenMissing(nil)
	}

	err := uc.SessionService.DeleteSession(ctx, actor.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionService.DeleteSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, actor.UserID),
	)
	return nil
}

func (uc *authUsecase) VerifyToken(ctx context.Context, token string) (*models.Actor, error) {
	requestID := utils.GetRequestID(ctx)

	claims, err := uc.TokenManager.ParseToken(token)
	if err != nil {
		uc.Log.Info("authUsecase.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalid(err)
	}

	session, err := uc.SessionService.GetSession(ctx, claims.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.VerifyToken error calling SessionService.GetSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if session == nil || session.UserID != claims.UserID {
		uc.Log.Info("authUsecase.VerifyToken session revoked or expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, claims.UserID),
		)
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	return session.Actor(), nil
}

// issueToken opens a redis session and signs a token bound to it; both share
// the same expiry so logout or expiry revokes the token.
func (uc *authUsecase) issueToken(ctx context.Context, user *models.User) (*responses.AuthToken, error) {
	requestID := utils.GetRequestID(ctx)

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: uc.now().Add(uc.TokenManager.TokenLifetime()),
	}

	err := uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.issueToken error calling SessionService.CreateSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := uc.TokenManager.CreateToken(session)
	if err != nil {
		uc.Log.Error("authUsecase.issueToken error calling TokenManager.CreateToken",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.AuthToken{
		Token:     token,
		ExpiresAt: session.ExpiresAt.Unix(),
		User:      user,
	}, nil
}
