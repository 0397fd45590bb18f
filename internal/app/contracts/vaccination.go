package contracts

import (
	"context"
	"time"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
)

type VaccinationUsecase interface {
	CreateVaccination(ctx context.Context, actor *models.Actor, request *requests.CreateVaccination) (*models.Vaccination, error)
	ListByBaby(ctx context.Context, actor *models.Actor, babyID string) ([]models.Vaccination, error)
	GetVaccination(ctx context.Context, actor *models.Actor, vaccinationID string) (*models.Vaccination, error)
	UpdateVaccination(ctx context.Context, actor *models.Actor, vaccinationID string, request *requests.UpdateVaccination) (*models.Vaccination, error)
	ListUpcoming(ctx context.Context, actor *models.Actor, days int) ([]models.Vaccination, error)
	GetStats(ctx context.Context, actor *models.Actor) ([]models.VaccinationStat, error)
}

type VaccinationRepository interface {
	Create(ctx context.Context, vaccination *models.Vaccination) (vaccinationID string, err error)
	FindByID(ctx context.Context, vaccinationID string) (*models.Vaccination, error)
	FindByBabyID(ctx context.Context, babyID string) ([]models.Vaccination, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]models.Vaccination, error)
	Update(ctx context.Context, vaccination *models.Vaccination) error
	DeleteByBabyID(ctx context.Context, babyID string) (int64, error)
	CountByVaccineType(ctx context.Context) ([]models.VaccinationStat, error)
}
