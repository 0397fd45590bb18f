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

type BabyController struct {
	Log            *zap.Logger
	BabyUsecase    contracts.BabyUsecase
	InternalConfig *config.InternalConfig
}

func NewBabyController(logger *zap.Logger, babyUsecase contracts.BabyUsecase, internalConfig *config.InternalConfig) *BabyController {
	return &BabyController{
		Log:            logger,
		BabyUsecase:    babyUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *BabyController) CreateBaby(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BabyController.CreateBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.CreateBaby)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Sanitize request
	utils.SanitizeCreateBabyRequest(request)

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.BabyUsecase.CreateBaby(ctx, utils.GetActor(r.Context()), request)
	if err != nil {
		ctrl.Log.Error("BabyController.CreateBaby error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BabyController.CreateBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBabySuccessMessage, result)
}

func (ctrl *BabyController) ListBabies(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BabyController.ListBabies called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	babies, total, err := ctrl.BabyUsecase.ListBabies(ctx, utils.GetActor(r.Context()), pagination)
	if err != nil {
		ctrl.Log.Error("BabyController.ListBabies error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.Limit, r.URL.Path)

	ctrl.Log.Info("BabyController.ListBabies succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, total),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetBabiesSuccessMessage, paginationData, babies)
}

func (ctrl *BabyController) GetBaby(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BabyController.GetBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	babyID, err := urlParamID(r, constvars.URLParamBabyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.BabyUsecase.GetBaby(ctx, utils.GetActor(r.Context()), babyID)
	if err != nil {
		ctrl.Log.Error("BabyController.GetBaby error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBabyIDKey, babyID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBabySuccessMessage, result)
}

func (ctrl *BabyController) UpdateBaby(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BabyController.UpdateBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	babyID, err := urlParamID(r, constvars.URLParamBabyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateBaby)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateBabyRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.BabyUsecase.UpdateBaby(ctx, utils.GetActor(r.Context()), babyID, request)
	if err != nil {
		ctrl.Log.Error("BabyController.UpdateBaby error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBabyIDKey, babyID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BabyController.UpdateBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBabySuccessMessage, result)
}

func (ctrl *BabyController) DeleteBaby(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BabyController.DeleteBaby called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	babyID, err := urlParamID(r, constvars.URLParamBabyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err = ctrl.BabyUsecase.DeleteBaby(ctx, utils.GetActor(r.Context()), babyID)
	if err != nil {
		ctrl.Log.Error("BabyController.DeleteBaby error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBabyIDKey, babyID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BabyController.DeleteBaby succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBabyIDKey, babyID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteBabySuccessMessage, nil)
}
