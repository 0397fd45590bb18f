package contracts

import (
	"context"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/dto/responses"
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, actor *models.Actor, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
	ListByPatient(ctx context.Context, actor *models.Actor, patientID string) ([]models.MedicalRecord, error)
	GetMedicalRecord(ctx context.Context, actor *models.Actor, recordID string) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, actor *models.Actor, recordID string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error)
	UploadAttachment(ctx context.Context, actor *models.Actor, recordID string, request *requests.UploadAttachment) (*models.MedicalRecord, error)
	GetAttachmentURL(ctx context.Context, actor *models.Actor, recordID, objectName string) (*responses.AttachmentURL, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *models.MedicalRecord) (recordID string, err error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
	Update(ctx context.Context, record *models.MedicalRecord) error
	AddAttachment(ctx context.Context, recordID, objectName string) error
}
