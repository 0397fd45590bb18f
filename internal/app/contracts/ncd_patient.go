package contracts

import (
	"context"
	"time"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
)

type NCDPatientUsecase interface {
	CreateNCDPatient(ctx context.Context, actor *models.Actor, request *requests.CreateNCDPatient) (*models.NCDPatient, error)
	ListNCDPatients(ctx context.Context, actor *models.Actor, pagination *requests.Pagination) ([]models.NCDPatient, int64, error)
	GetNCDPatient(ctx context.Context, actor *models.Actor, patientID string) (*models.NCDPatient, error)
	UpdateNCDPatient(ctx context.Context, actor *models.Actor, patientID string, request *requests.UpdateNCDPatient) (*models.NCDPatient, error)
	GetNCDStats(ctx context.Context, actor *models.Actor) (*models.NCDStats, error)
}

type NCDPatientRepository interface {
	Create(ctx context.Context, patient *models.NCDPatient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.NCDPatient, error)
	Find(ctx context.Context, query *models.NCDPatientQuery) ([]models.NCDPatient, int64, error)
	Update(ctx context.Context, patient *models.NCDPatient) error
	CountByNCDType(ctx context.Context) ([]models.NCDTypeCount, error)
	CountByAgeGroup(ctx context.Context, now time.Time) ([]models.AgeGroupCount, error)
}
