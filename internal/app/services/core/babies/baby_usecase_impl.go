package babies

import (
	"context"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type babyUsecase struct {
	BabyRepository        contracts.BabyRepository
	VaccinationRepository contracts.VaccinationRepository
	Gate                  contracts.AccessGate
	Log                   *zap.Logger
}

func NewBabyUsecase(
	babyRepository contracts.BabyRepository,
	vaccinationRepository contracts.VaccinationRepository,
	gate contracts.AccessGate,
	logger *zap.Logger,
) contracts.BabyUsecase {
	return &babyUsecase{
		BabyRepository:        babyRepository,
		VaccinationRepository: vaccinationRepository,
		Gate:                  gate,
		Log:                   logger,
	}
}

func (uc *babyUsecase) CreateBaby(ctx context.Context, actor *models.Actor, request *requests.CreateBaby) (*models.Baby, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("babyUsecase.CreateBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.Gate.Authorize(actor, constvars.ResourceBaby, constvars.ActionCreate, nil); err != nil {
		return nil, err
	}

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, request.DateOfBirth)
	}

	baby := &models.Baby{
		ParentID:    actor.UserID,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DateOfBirth: dateOfBirth,
		Gender:      request.Gender,
		BirthWeight: request.BirthWeight,
		BirthHeight: request.BirthHeight,
		BloodType:   request.BloodType,
		Allergies:   request.Allergies,
	}
	if baby.Allergies == nil {
		baby.Allergies = []string{}
	}
	baby.SetCreatedAtUpdatedAt()

	babyID, err := uc.BabyRepository.Create(ctx, baby)
	if err != nil {
		uc.Log.Error("babyUsecase.CreateBaby error calling BabyRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	baby.ID = babyID

	uc.Log.Info("babyUsecase.CreateBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)
	return baby, nil
}

func (uc *babyUsecase) ListBabies(ctx context.Context, actor *models.Actor, pagination *requests.Pagination) ([]models.Baby, int64, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("babyUsecase.ListBabies called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, pagination),
	)

	decision, err := uc.Gate.Authorize(actor, constvars.ResourceBaby, constvars.ActionList, nil)
	if err != nil {
		return nil, 0, err
	}

	query := &models.BabyQuery{
		Search: pagination.Search,
		Skip:   pagination.Skip(),
		Limit:  int64(pagination.Limit),
	}
	if decision.Scope == constvars.ScopeOwn {
		query.ParentID = actor.UserID
	}

	babies, total, err := uc.BabyRepository.Find(ctx, query)
	if err != nil {
		uc.Log.Error("babyUsecase.ListBabies error calling BabyRepository.Find",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("babyUsecase.ListBabies succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(babies)),
	)
	return babies, total, nil
}

func (uc *babyUsecase) GetBaby(ctx context.Context, actor *models.Actor, babyID string) (*models.Baby, error) {
	uc.Log.Info("babyUsecase.GetBaby called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)
	return uc.loadBaby(ctx, actor, babyID, constvars.ActionRead)
}

func (uc *babyUsecase) UpdateBaby(ctx context.Context, actor *models.Actor, babyID string, request *requests.UpdateBaby) (*models.Baby, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("babyUsecase.UpdateBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)

	baby, err := uc.loadBaby(ctx, actor, babyID, constvars.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if err := applyBabyUpdate(baby, request); err != nil {
		return nil, err
	}
	baby.SetUpdatedAt()

	err = uc.BabyRepository.Update(ctx, baby)
	if err != nil {
		uc.Log.Error("babyUsecase.UpdateBaby error calling BabyRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("babyUsecase.UpdateBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)
	return baby, nil
}

// DeleteBaby removes the baby together with its vaccination history.
func (uc *babyUsecase) DeleteBaby(ctx context.Context, actor *models.Actor, babyID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("babyUsecase.DeleteBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)

	baby, err := uc.loadBaby(ctx, actor, babyID, constvars.ActionDelete)
	if err != nil {
		return err
	}

	deleted, err := uc.VaccinationRepository.DeleteByBabyID(ctx, baby.ID)
	if err != nil {
		uc.Log.Error("babyUsecase.DeleteBaby error calling VaccinationRepository.DeleteByBabyID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.BabyRepository.DeleteByID(ctx, baby.ID)
	if err != nil {
		uc.Log.Error("babyUsecase.DeleteBaby error calling BabyRepository.DeleteByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("babyUsecase.DeleteBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
		zap.Int64(constvars.LoggingCountKey, deleted),
	)
	return nil
}

func (uc *babyUsecase) loadBaby(ctx context.Context, actor *models.Actor, babyID, action string) (*models.Baby, error) {
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceBaby, action, nil); err != nil {
		return nil, err
	}

	baby, err := uc.BabyRepository.FindByID(ctx, babyID)
	if err != nil {
		uc.Log.Error("babyUsecase.loadBaby error calling BabyRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if baby != nil {
		ownerID = baby.ParentID
	}
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceBaby, action, models.TargetOf(baby != nil, ownerID)); err != nil {
		return nil, err
	}
	return baby, nil
}

func applyBabyUpdate(baby *models.Baby, request *requests.UpdateBaby) error {
	if request.FirstName != nil {
		baby.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		baby.LastName = *request.LastName
	}
	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
		if err != nil {
			return exceptions.ErrCannotParseDate(err, *request.DateOfBirth)
		}
		baby.DateOfBirth = dateOfBirth
	}
	if request.Gender != nil {
		baby.Gender = *request.Gender
	}
	if request.BirthWeight != nil {
		baby.BirthWeight = request.BirthWeight
	}
	if request.BirthHeight != nil {
		baby.BirthHeight = request.BirthHeight
	}
	if request.BloodType != nil {
		baby.BloodType = *request.BloodType
	}
	if request.Allergies != nil {
		baby.Allergies = *request.Allergies
	}
	return nil
}
