package vaccinations

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

type vaccinationUsecase struct {
	VaccinationRepository contracts.VaccinationRepository
	BabyRepository        contracts.BabyRepository
	Publisher             contracts.NotificationPublisher
	Gate                  contracts.AccessGate
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewVaccinationUsecase(
	vaccinationRepository contracts.VaccinationRepository,
	babyRepository contracts.BabyRepository,
	publisher contracts.NotificationPublisher,
	gate contracts.AccessGate,
	logger *zap.Logger,
) contracts.VaccinationUsecase {
	return &vaccinationUsecase{
		VaccinationRepository: vaccinationRepository,
		BabyRepository:        babyRepository,
		Publisher:             publisher,
		Gate:                  gate,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *vaccinationUsecase) CreateVaccination(ctx context.Context, actor *models.Actor, request *requests.CreateVaccination) (*models.Vaccination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccinationUsecase.CreateVaccination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, request.BabyID),
	)

	baby, err := uc.loadSubjectBaby(ctx, actor, request.BabyID, constvars.ActionCreate)
	if err != nil {
		return nil, err
	}

	vaccination := &models.Vaccination{
		BabyID:         baby.ID,
		VaccineType:    request.VaccineType,
		BatchNumber:    request.BatchNumber,
		AdministeredBy: actor.UserID,
		Notes:          request.Notes,
	}
	vaccination.DateAdministered, err = utils.ParseDate(request.DateAdministered)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, request.DateAdministered)
	}
	if request.NextDueDate != "" {
		nextDueDate, err := utils.ParseDate(request.NextDueDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, request.NextDueDate)
		}
		vaccination.NextDueDate = &nextDueDate
	}
	vaccination.SetCreatedAtUpdatedAt()

	vaccinationID, err := uc.VaccinationRepository.Create(ctx, vaccination)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.CreateVaccination error calling VaccinationRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	vaccination.ID = vaccinationID

	uc.publishRecorded(ctx, baby, vaccination)

	uc.Log.Info("vaccinationUsecase.CreateVaccination succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	return vaccination, nil
}

func (uc *vaccinationUsecase) ListByBaby(ctx context.Context, actor *models.Actor, babyID string) ([]models.Vaccination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccinationUsecase.ListByBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)

	baby, err := uc.loadSubjectBaby(ctx, actor, babyID, constvars.ActionList)
	if err != nil {
		return nil, err
	}

	vaccinations, err := uc.VaccinationRepository.FindByBabyID(ctx, baby.ID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.ListByBaby error calling VaccinationRepository.FindByBabyID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("vaccinationUsecase.ListByBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(vaccinations)),
	)
	return vaccinations, nil
}

func (uc *vaccinationUsecase) GetVaccination(ctx context.Context, actor *models.Actor, vaccinationID string) (*models.Vaccination, error) {
	uc.Log.Info("vaccinationUsecase.GetVaccination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	return uc.loadVaccination(ctx, actor, vaccinationID, constvars.ActionRead)
}

func (uc *vaccinationUsecase) UpdateVaccination(ctx context.Context, actor *models.Actor, vaccinationID string, request *requests.UpdateVaccination) (*models.Vaccination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccinationUsecase.UpdateVaccination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)

	vaccination, err := uc.loadVaccination(ctx, actor, vaccinationID, constvars.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if err := applyVaccinationUpdate(vaccination, request); err != nil {
		return nil, err
	}
	vaccination.SetUpdatedAt()

	err = uc.VaccinationRepository.Update(ctx, vaccination)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.UpdateVaccination error calling VaccinationRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("vaccinationUsecase.UpdateVaccination succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	return vaccination, nil
}

// ListUpcoming is a cross-owner report, so it is gated like the stats view.
func (uc *vaccinationUsecase) ListUpcoming(ctx context.Context, actor *models.Actor, days int) ([]models.Vaccination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccinationUsecase.ListUpcoming called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDaysKey, days),
	)

	if _, err := uc.Gate.Authorize(actor, constvars.ResourceVaccination, constvars.ActionStats, nil); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, exceptions.ErrQueryParamValidation(nil, constvars.QueryParamDays)
	}

	from := uc.now()
	to := from.AddDate(0, 0, days)
	vaccinations, err := uc.VaccinationRepository.FindDueBetween(ctx, from, to)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.ListUpcoming error calling VaccinationRepository.FindDueBetween",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("vaccinationUsecase.ListUpcoming succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(vaccinations)),
	)
	return vaccinations, nil
}

func (uc *vaccinationUsecase) GetStats(ctx context.Context, actor *models.Actor) ([]models.VaccinationStat, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccinationUsecase.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.Gate.Authorize(actor, constvars.ResourceVaccination, constvars.ActionStats, nil); err != nil {
		return nil, err
	}

	stats, err := uc.VaccinationRepository.CountByVaccineType(ctx)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.GetStats error calling VaccinationRepository.CountByVaccineType",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("vaccinationUsecase.GetStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(stats)),
	)
	return stats, nil
}

// loadSubjectBaby resolves the baby a vaccination belongs to; its parent owns
// the vaccination record.
func (uc *vaccinationUsecase) loadSubjectBaby(ctx context.Context, actor *models.Actor, babyID, action string) (*models.Baby, error) {
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceVaccination, action, nil); err != nil {
		return nil, err
	}

	baby, err := uc.BabyRepository.FindByID(ctx, babyID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.loadSubjectBaby error calling BabyRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if baby != nil {
		ownerID = baby.ParentID
	}
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceVaccination, action, models.TargetOf(baby != nil, ownerID)); err != nil {
		return nil, err
	}
	return baby, nil
}

func (uc *vaccinationUsecase) loadVaccination(ctx context.Context, actor *models.Actor, vaccinationID, action string) (*models.Vaccination, error) {
	requestID := utils.GetRequestID(ctx)
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceVaccination, action, nil); err != nil {
		return nil, err
	}

	vaccination, err := uc.VaccinationRepository.FindByID(ctx, vaccinationID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.loadVaccination error calling VaccinationRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if vaccination != nil {
		baby, err := uc.BabyRepository.FindByID(ctx, vaccination.BabyID)
		if err != nil {
			uc.Log.Error("vaccinationUsecase.loadVaccination error calling BabyRepository.FindByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if baby != nil {
			ownerID = baby.ParentID
		}
	}

	if _, err := uc.Gate.Authorize(actor, constvars.ResourceVaccination, action, models.TargetOf(vaccination != nil, ownerID)); err != nil {
		return nil, err
	}
	return vaccination, nil
}

func (uc *vaccinationUsecase) publishRecorded(ctx context.Context, baby *models.Baby, vaccination *models.Vaccination) {
	payload := map[string]string{
		"babyId":           baby.ID,
		"babyName":         baby.FirstName + " " + baby.LastName,
		"vaccinationId":    vaccination.ID,
		"vaccineType":      vaccination.VaccineType,
		"dateAdministered": vaccination.DateAdministered.Format(constvars.DateLayout),
	}
	if vaccination.NextDueDate != nil {
		payload["nextDueDate"] = vaccination.NextDueDate.Format(constvars.DateLayout)
	}

	notification := &models.Notification{
		Type:       constvars.NotificationVaccinationRecorded,
		Recipient:  baby.ParentID,
		Subject:    vaccination.VaccineType + " recorded",
		Payload:    payload,
		OccurredAt: uc.now(),
	}
	if err := uc.Publisher.Publish(ctx, notification); err != nil {
		uc.Log.Warn("vaccinationUsecase.publishRecorded error calling NotificationPublisher.Publish",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingVaccinationIDKey, vaccination.ID),
			zap.Error(err),
		)
	}
}

func applyVaccinationUpdate(vaccination *models.Vaccination, request *requests.UpdateVaccination) error {
	if request.VaccineType != nil {
		vaccination.VaccineType = *request.VaccineType
	}
	if request.DateAdministered != nil {
		dateAdministered, err := utils.ParseDate(*request.DateAdministered)
		if err != nil {
			return exceptions.ErrCannotParseDate(err, *request.DateAdministered)
		}
		vaccination.DateAdministered = dateAdministered
	}
	if request.NextDueDate != nil {
		nextDueDate, err := utils.ParseDate(*request.NextDueDate)
		if err != nil {
			return exceptions.ErrCannotParseDate(err, *request.NextDueDate)
		}
		vaccination.NextDueDate = &nextDueDate
	}
	if request.BatchNumber != nil {
		vaccination.BatchNumber = *request.BatchNumber
	}
	if request.Notes != nil {
		vaccination.Notes = *request.Notes
	}
	return nil
}
