package users

import (
	"context"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Gate           contracts.AccessGate
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	gate contracts.AccessGate,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Gate:           gate,
		Log:            logger,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, actor *models.Actor) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.loadOwnUser(ctx, actor, constvars.ActionRead)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, actor *models.Actor, request *requests.UpdateProfile) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.loadOwnUser(ctx, actor, constvars.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
	if request.PhoneNumber != nil {
		user.PhoneNumber = *request.PhoneNumber
	}
	// only providers carry a facility
	if request.FacilityName != nil && user.Role == constvars.RoleHealthcareProvider {
		user.FacilityName = *request.FacilityName
	}
	user.SetUpdatedAt()

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error calling UserRepository.UpdateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *userUsecase) loadOwnUser(ctx context.Context, actor *models.Actor, action string) (*models.User, error) {
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceUser, action, nil); err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, actor.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.loadOwnUser error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if user != nil {
		ownerID = user.ID
	}
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceUser, action, models.TargetOf(user != nil, ownerID)); err != nil {
		return nil, err
	}
	return user, nil
}
