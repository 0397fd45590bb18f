package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// multipartMemoryLimit is how much of a multipart body is kept in memory
// before the remainder spills to temporary files.
const multipartMemoryLimit = 8 << 20

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	InternalConfig       *config.InternalConfig
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, internalConfig *config.InternalConfig) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicalRecordController.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.CreateMedicalRecord)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Sanitize request
	utils.SanitizeCreateMedicalRecordRequest(request)

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, utils.GetActor(r.Context()), request)
	if err != nil {
		ctrl.Log.Error("MedicalRecordController.CreateMedicalRecord error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicalRecordController.CreateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) ListByPatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicalRecordController.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := urlParamID(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.ListByPatient(ctx, utils.GetActor(r.Context()), patientID)
	if err != nil {
		ctrl.Log.Error("MedicalRecordController.ListByPatient error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage, result)
}

func (ctrl *MedicalRecordController) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicalRecordController.GetMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	recordID, err := urlParamID(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.GetMedicalRecord(ctx, utils.GetActor(r.Context()), recordID)
	if err != nil {
		ctrl.Log.Error("MedicalRecordController.GetMedicalRecord error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicalRecordController.UpdateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	recordID, err := urlParamID(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateMedicalRecord)
	if err := utils.DecodeJSONBody(r.Body, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateMedicalRecordRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.UpdateMedicalRecord(ctx, utils.GetActor(r.Context()), recordID, request)
	if err != nil {
		ctrl.Log.Error("MedicalRecordController.UpdateMedicalRecord error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicalRecordController.UpdateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicalRecordController.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	recordID, err := urlParamID(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(maxBytesErr.Limit))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.MultipartFormFileField)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadAttachment{
		File:        file,
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Size:        header.Size,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.UploadAttachment(ctx, utils.GetActor(r.Context()), recordID, request)
	if err != nil {
		ctrl.Log.Error("MedicalRecordController.UploadAttachment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicalRecordController.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, result)
}

func (ctrl *MedicalRecordController) GetAttachmentURL(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicalRecordController.GetAttachmentURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	recordID, err := urlParamID(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	objectName := strings.TrimSpace(chi.URLParam(r, constvars.URLParamObjectName))
	if objectName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.LoggingObjectNameKey))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.GetAttachmentURL(ctx, utils.GetActor(r.Context()), recordID, objectName)
	if err != nil {
		ctrl.Log.Error("MedicalRecordController.GetAttachmentURL error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentURLSuccessMessage, result)
}
