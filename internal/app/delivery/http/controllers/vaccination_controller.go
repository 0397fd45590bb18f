package controllers

import (
	"context"
	"net/http"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type VaccinationController struct {
	Log                *zap.Logger
	VaccinationUsecase contracts.VaccinationUsecase
	InternalConfig     *config.InternalConfig
}

func NewVaccinationController(logger *zap.Logger, vaccinationUsecase contracts.VaccinationUsecase, internalConfig *config.InternalConfig) *VaccinationController {
	return &VaccinationController{
		Log:                logger,
		VaccinationUsecase: vaccinationUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *VaccinationController) CreateVaccination(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccinationController.CreateVaccination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.CreateVaccination)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Sanitize request
	utils.SanitizeCreateVaccinationRequest(request)

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.VaccinationUsecase.CreateVaccination(ctx, utils.GetActor(r.Context()), request)
	if err != nil {
		ctrl.Log.Error("VaccinationController.CreateVaccination error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("VaccinationController.CreateVaccination succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVaccinationSuccessMessage, result)
}

func (ctrl *VaccinationController) ListByBaby(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccinationController.ListByBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	babyID, err := urlParamID(r, constvars.URLParamBabyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.VaccinationUsecase.ListByBaby(ctx, utils.GetActor(r.Context()), babyID)
	if err != nil {
		ctrl.Log.Error("VaccinationController.ListByBaby error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBabyIDKey, babyID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVaccinationsSuccessMessage, result)
}

func (ctrl *VaccinationController) GetVaccination(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccinationController.GetVaccination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	vaccinationID, err := urlParamID(r, constvars.URLParamVaccinationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.VaccinationUsecase.GetVaccination(ctx, utils.GetActor(r.Context()), vaccinationID)
	if err != nil {
		ctrl.Log.Error("VaccinationController.GetVaccination error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVaccinationSuccessMessage, result)
}

func (ctrl *VaccinationController) UpdateVaccination(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccinationController.UpdateVaccination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	vaccinationID, err := urlParamID(r, constvars.URLParamVaccinationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateVaccination)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateVaccinationRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.VaccinationUsecase.UpdateVaccination(ctx, utils.GetActor(r.Context()), vaccinationID, request)
	if err != nil {
		ctrl.Log.Error("VaccinationController.UpdateVaccination error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("VaccinationController.UpdateVaccination succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateVaccinationSuccessMessage, result)
}

func (ctrl *VaccinationController) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccinationController.ListUpcoming called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	days, err := utils.ParseDaysQuery(r, constvars.DefaultUpcomingDays)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.VaccinationUsecase.ListUpcoming(ctx, utils.GetActor(r.Context()), days)
	if err != nil {
		ctrl.Log.Error("VaccinationController.ListUpcoming error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingDaysKey, days),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUpcomingVaccinationSuccessMessage, result)
}

func (ctrl *VaccinationController) GetStats(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccinationController.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.VaccinationUsecase.GetStats(ctx, utils.GetActor(r.Context()))
	if err != nil {
		ctrl.Log.Error("VaccinationController.GetStats error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVaccinationStatsSuccessMessage, result)
}
