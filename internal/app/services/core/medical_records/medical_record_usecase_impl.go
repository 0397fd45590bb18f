package medical_records

import (
	"context"
	"fmt"
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

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	NCDPatientRepository    contracts.NCDPatientRepository
	Storage                 contracts.Storage
	Gate                    contracts.AccessGate
	MinioConfig             config.AppMinio
	Log                     *zap.Logger
	now                     func() time.Time
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	ncdPatientRepository contracts.NCDPatientRepository,
	storage contracts.Storage,
	gate contracts.AccessGate,
	minioConfig config.AppMinio,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		NCDPatientRepository:    ncdPatientRepository,
		Storage:                 storage,
		Gate:                    gate,
		MinioConfig:             minioConfig,
		Log:                     logger,
		now:                     time.Now,
	}
}

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, actor *models.Actor, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.loadSubjectPatient(ctx, actor, request.PatientID, constvars.ActionCreate)
	if err != nil {
		return nil, err
	}

	recordDate, err := utils.ParseDate(request.RecordDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, request.RecordDate)
	}

	record := &models.MedicalRecord{
		PatientID:   patient.ID,
		RecordDate:  recordDate,
		RecordType:  request.RecordType,
		Title:       request.Title,
		Description: request.Description,
		Vitals:      toVitals(request.Vitals),
		Attachments: []string{},
		ProviderID:  actor.UserID,
	}
	record.SetCreatedAtUpdatedAt()

	recordID, err := uc.MedicalRecordRepository.Create(ctx, record)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error calling MedicalRecordRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	record.ID = recordID

	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

func (uc *medicalRecordUsecase) ListByPatient(ctx context.Context, actor *models.Actor, patientID string) ([]models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.loadSubjectPatient(ctx, actor, patientID, constvars.ActionList)
	if err != nil {
		return nil, err
	}

	records, err := uc.MedicalRecordRepository.FindByPatientID(ctx, patient.ID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.ListByPatient error calling MedicalRecordRepository.FindByPatientID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.ListByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return records, nil
}

func (uc *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, actor *models.Actor, recordID string) (*models.MedicalRecord, error) {
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return uc.loadRecord(ctx, actor, recordID, constvars.ActionRead)
}

func (uc *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, actor *models.Actor, recordID string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.UpdateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.loadRecord(ctx, actor, recordID, constvars.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if err := applyMedicalRecordUpdate(record, request); err != nil {
		return nil, err
	}
	record.SetUpdatedAt()

	err = uc.MedicalRecordRepository.Update(ctx, record)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.UpdateMedicalRecord error calling MedicalRecordRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.UpdateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

// UploadAttachment stores the file under medical-records/{recordId}/ and
// appends the object name to the record.
func (uc *medicalRecordUsecase) UploadAttachment(ctx context.Context, actor *models.Actor, recordID string, request *requests.UploadAttachment) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.loadRecord(ctx, actor, recordID, constvars.ActionAttach)
	if err != nil {
		return nil, err
	}

	maxBytes := int64(uc.MinioConfig.AttachmentMaxUploadSizeInMB) << 20
	if request.Size > maxBytes {
		return nil, exceptions.ErrFileTooLarge(maxBytes)
	}

	objectName := fmt.Sprintf(constvars.AttachmentObjectKeyFormat, record.ID, utils.GenerateAttachmentName(request.FileName))
	contentType := request.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	objectName, err = uc.Storage.UploadFile(ctx, request.File, request.Size, contentType, uc.MinioConfig.BucketName, objectName)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.UploadAttachment error calling Storage.UploadFile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.MedicalRecordRepository.AddAttachment(ctx, record.ID, objectName)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.UploadAttachment error calling MedicalRecordRepository.AddAttachment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}
	record.Attachments = append(record.Attachments, objectName)

	uc.Log.Info("medicalRecordUsecase.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return record, nil
}

func (uc *medicalRecordUsecase) GetAttachmentURL(ctx context.Context, actor *models.Actor, recordID, objectName string) (*responses.AttachmentURL, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.GetAttachmentURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	record, err := uc.loadRecord(ctx, actor, recordID, constvars.ActionRead)
	if err != nil {
		return nil, err
	}
	if !record.HasAttachment(objectName) {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceAttachment)
	}

	expiry := time.Duration(uc.MinioConfig.PreSignedUrlExpiryTimeInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.MinioConfig.BucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.GetAttachmentURL error calling Storage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.GetAttachmentURL succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.AttachmentURL{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  uc.now().Add(expiry),
	}, nil
}

// loadSubjectPatient resolves the NCD patient a record belongs to; the
// patient's user owns the record.
func (uc *medicalRecordUsecase) loadSubjectPatient(ctx context.Context, actor *models.Actor, patientID, action string) (*models.NCDPatient, error) {
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceMedicalRecord, action, nil); err != nil {
		return nil, err
	}

	patient, err := uc.NCDPatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.loadSubjectPatient error calling NCDPatientRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if patient != nil {
		ownerID = patient.UserID
	}
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceMedicalRecord, action, models.TargetOf(patient != nil, ownerID)); err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *medicalRecordUsecase) loadRecord(ctx context.Context, actor *models.Actor, recordID, action string) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	if _, err := uc.Gate.Authorize(actor, constvars.ResourceMedicalRecord, action, nil); err != nil {
		return nil, err
	}

	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.loadRecord error calling MedicalRecordRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var ownerID string
	if record != nil {
		patient, err := uc.NCDPatientRepository.FindByID(ctx, record.PatientID)
		if err != nil {
			uc.Log.Error("medicalRecordUsecase.loadRecord error calling NCDPatientRepository.FindByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if patient != nil {
			ownerID = patient.UserID
		}
	}

	if _, err := uc.Gate.Authorize(actor, constvars.ResourceMedicalRecord, action, models.TargetOf(record != nil, ownerID)); err != nil {
		return nil, err
	}
	return record, nil
}

func toVitals(request *requests.Vitals) *models.Vitals {
	if request == nil {
		return nil
	}
	vitals := models.Vitals(*request)
	return &vitals
}

func applyMedicalRecordUpdate(record *models.MedicalRecord, request *requests.UpdateMedicalRecord) error {
	if request.RecordDate != nil {
		recordDate, err := utils.ParseDate(*request.RecordDate)
		if err != nil {
			return exceptions.ErrCannotParseDate(err, *request.RecordDate)
		}
		record.RecordDate = recordDate
	}
	if request.RecordType != nil {
		record.RecordType = *request.RecordType
	}
	if request.Title != nil {
		record.Title = *request.Title
	}
	if request.Description != nil {
		record.Description = *request.Description
	}
	if request.Vitals != nil {
		record.Vitals = toVitals(request.Vitals)
	}
	return nil
}
