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

type NCDPatientController struct {
	Log               *zap.Logger
	NCDPatientUsecase contracts.NCDPatientUsecase
	InternalConfig    *config.InternalConfig
}

func NewNCDPatientController(logger *zap.Logger, ncdPatientUsecase contracts.NCDPatientUsecase, internalConfig *config.InternalConfig) *NCDPatientController {
	return &NCDPatientController{
		Log:               logger,
		NCDPatientUsecase: ncdPatientUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *NCDPatientController) CreateNCDPatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NCDPatientController.CreateNCDPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateNCDPatient)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateNCDPatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.NCDPatientUsecase.CreateNCDPatient(ctx, utils.GetActor(r.Context()), request)
	if err != nil {
		ctrl.Log.Error("NCDPatientController.CreateNCDPatient error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NCDPatientController.CreateNCDPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateNCDPatientSuccessMessage, result)
}

func (ctrl *NCDPatientController) ListNCDPatients(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NCDPatientController.ListNCDPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	patients, total, err := ctrl.NCDPatientUsecase.ListNCDPatients(ctx, utils.GetActor(r.Context()), pagination)
	if err != nil {
		ctrl.Log.Error("NCDPatientController.ListNCDPatients error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.Limit, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetNCDPatientsSuccessMessage, paginationData, patients)
}

func (ctrl *NCDPatientController) GetNCDPatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NCDPatientController.GetNCDPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := urlParamID(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.NCDPatientUsecase.GetNCDPatient(ctx, utils.GetActor(r.Context()), patientID)
	if err != nil {
		ctrl.Log.Error("NCDPatientController.GetNCDPatient error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNCDPatientSuccessMessage, result)
}

func (ctrl *NCDPatientController) UpdateNCDPatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NCDPatientController.UpdateNCDPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := urlParamID(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateNCDPatient)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateNCDPatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.NCDPatientUsecase.UpdateNCDPatient(ctx, utils.GetActor(r.Context()), patientID, request)
	if err != nil {
		ctrl.Log.Error("NCDPatientController.UpdateNCDPatient error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NCDPatientController.UpdateNCDPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateNCDPatientSuccessMessage, result)
}

func (ctrl *NCDPatientController) GetNCDStats(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NCDPatientController.GetNCDStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.NCDPatientUsecase.GetNCDStats(ctx, utils.GetActor(r.Context()))
	if err != nil {
		ctrl.Log.Error("NCDPatientController.GetNCDStats error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNCDPatientStatsSuccessMessage, result)
}
