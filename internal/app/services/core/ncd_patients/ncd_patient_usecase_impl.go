package ncd_patients

import (
	"context"
	"time"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ncdPatientUsecase struct {
	NCDPatientRepository contracts.NCDPatientRepository
	UserRepository       contracts.UserRepository
	Gate                 contracts.AccessGate
	Log                  *zap.Logger
	now                  func() time.Time
}

func NewNCDPatientUsecase(
	ncdPatientRepository contracts.NCDPatientRepository,
	userRepository contracts.UserRepository,
	gate contracts.AccessGate,
	logger *zap.Logger,
) contracts.NCDPatientUsecase {
	return &ncdPatientUsecase{
		NCDPatientRepository: ncdPatientRepository,
		UserRepository:       userRepository,
		Gate:                 gate,
		Log:                  logger,
		now:                  time.Now,
	}
}

// CreateNCDPatient creates the caller's own profile, or, for a provider, the
// profile of the ncd_patient user named in the request.
func (uc *ncdPatientUsecase) CreateNCDPatient(ctx context.Context, actor *models.Actor, request *requests.CreateNCDPatient) (*models.NCDPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("ncdPatientUsecase.CreateNCDPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	decision, err := uc.Gate.Authorize(actor, constvars.ResourceNCDPatient, constvars.ActionCreate, nil)
	if err != nil {
		return nil, err
	}

	ownerID := actor.UserID
	if decision.Scope == constvars.ScopeAny {
		ownerID, err = uc.resolvePatientUser(ctx, actor, request.UserID)
		if err != nil {
			return nil, err
		}
	}

	patient, err := buildNCDPatient(ownerID, request)
	if err != nil {
		return nil, err
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.NCDPatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.CreateNCDPatient error calling NCDPatientRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, ownerID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	uc.Log.Info("ncdPatientUsecase.CreateNCDPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *ncdPatientUsecase) ListNCDPatients(ctx context.Context, actor *models.Actor, pagination *requests.Pagination) ([]models.NCDPatient, int64, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("ncdPatientUsecase.ListNCDPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, pagination),
	)

	decision, err := uc.Gate.Authorize(actor, constvars.ResourceNCDPatient, constvars.ActionList, nil)
	if err != nil {
		return nil, 0, err
	}

	query := &models.NCDPatientQuery{
		Search: pagination.Search,
		Skip:   pagination.Skip(),
		Limit:  int64(pagination.Limit),
	}
	if decision.Scope == constvars.ScopeOwn {
		query.UserID = actor.UserID
	}

	patients, total, err := uc.NCDPatientRepository.Find(ctx, query)
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.ListNCDPatients error calling NCDPatientRepository.Find",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("ncdPatientUsecase.ListNCDPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, total, nil
}

func (uc *ncdPatientUsecase) GetNCDPatient(ctx context.Context, actor *models.Actor, patientID string) (*models.NCDPatient, error) {
	uc.Log.Info("ncdPatientUsecase.GetNCDPatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return uc.loadNCDPatient(ctx, actor, patientID, constvars.ActionRead)
}

func (uc *ncdPatientUsecase) UpdateNCDPatient(ctx context.Context, actor *models.Actor, patientID string, request *requests.UpdateNCDPatient) (*models.NCDPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("ncdPatientUsecase.UpdateNCDPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.loadNCDPatient(ctx, actor, patientID, constvars.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if err := applyNCDPatientUpdate(patient, request); err != nil {
		return nil, err
	}
	patient.SetUpdatedAt()

	err = uc.NCDPatientRepository.Update(ctx, patient)
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.UpdateNCDPatient error calling NCDPatientRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("ncdPatientUsecase.UpdateNCDPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *ncdPatientUsecase) GetNCDStats(ctx context.Context, actor *models.Actor) (*models.NCDStats, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("ncdPatientUsecase.GetNCDStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.Gate.Authorize(actor, constvars.ResourceNCDPatient, constvars.ActionStats, nil); err != nil {
		return nil, err
	}

	typeCounts, err := uc.NCDPatientRepository.CountByNCDType(ctx)
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.GetNCDStats error calling NCDPatientRepository.CountByNCDType",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ageCounts, err := uc.NCDPatientRepository.CountByAgeGroup(ctx, uc.now())
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.GetNCDStats error calling NCDPatientRepository.CountByAgeGroup",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("ncdPatientUsecase.GetNCDStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &models.NCDStats{
		NCDTypeStats:  typeCounts,
		AgeGroupStats: ageCounts,
	}, nil
}

func (uc *ncdPatientUsecase) resolvePatientUser(ctx context.Context, actor *models.Actor, userID string) (string, error) {
	if userID == "" {
		return "", exceptions.ErrMissingRequiredField(actor.Role, "userId")
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.resolvePatientUser error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return "", err
	}
	if user == nil || user.Role != constvars.RoleNCDPatient {
		return "", exceptions.ErrInvalidNCDPatientUser(nil)
	}
	return user.ID, nil
}

func (uc *ncdPatientUsecase) loadNCDPatient(ctx context.Context, actor *models.Actor, patientID, action string) (*models.NCDPatient, error) {
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceNCDPatient, action, nil); err != nil {
		return nil, err
	}

	patient, err := uc.NCDPatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("ncdPatientUsecase.loadNCDPatient error calling NCDPatientRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if patient != nil {
		ownerID = patient.UserID
	}
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceNCDPatient, action, models.TargetOf(patient != nil, ownerID)); err != nil {
		return nil, err
	}
	return patient, nil
}

func buildNCDPatient(ownerID string, request *requests.CreateNCDPatient) (*models.NCDPatient, error) {
	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, request.DateOfBirth)
	}
	history, err := toMedicalHistory(&request.MedicalHistory)
	if err != nil {
		return nil, err
	}

	return &models.NCDPatient{
		UserID:           ownerID,
		DateOfBirth:      dateOfBirth,
		Gender:           request.Gender,
		EmergencyContact: models.EmergencyContact(request.EmergencyContact),
		MedicalHistory:   history,
	}, nil
}

func toMedicalHistory(request *requests.MedicalHistory) (models.MedicalHistory, error) {
	diagnosisDate, err := utils.ParseDate(request.DiagnosisDate)
	if err != nil {
		return models.MedicalHistory{}, exceptions.ErrCannotParseDate(err, request.DiagnosisDate)
	}
	return models.MedicalHistory{
		NCDTypes:      nonNil(request.NCDTypes),
		DiagnosisDate: diagnosisDate,
		Medications:   nonNil(request.Medications),
		Allergies:     nonNil(request.Allergies),
		FamilyHistory: nonNil(request.FamilyHistory),
	}, nil
}

func applyNCDPatientUpdate(patient *models.NCDPatient, request *requests.UpdateNCDPatient) error {
	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
		if err != nil {
			return exceptions.ErrCannotParseDate(err, *request.DateOfBirth)
		}
		patient.DateOfBirth = dateOfBirth
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = models.EmergencyContact(*request.EmergencyContact)
	}
	if request.MedicalHistory != nil {
		history, err := toMedicalHistory(request.MedicalHistory)
		if err != nil {
			return err
		}
		patient.MedicalHistory = history
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
