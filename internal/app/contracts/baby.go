package contracts

import (
	"context"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
)

type BabyUsecase interface {
	CreateBaby(ctx context.Context, actor *models.Actor, request *requests.CreateBaby) (*models.Baby, error)
	ListBabies(ctx context.Context, actor *models.Actor, pagination *requests.Pagination) ([]models.Baby, int64, error)
	GetBaby(ctx context.Context, actor *models.Actor, babyID string) (*models.Baby, error)
	UpdateBaby(ctx context.Context, actor *models.Actor, babyID string, request *requests.UpdateBaby) (*models.Baby, error)
	DeleteBaby(ctx context.Context, actor *models.Actor, babyID string) error
}

type BabyRepository interface {
	Create(ctx context.Context, baby *models.Baby) (babyID string, err error)
	FindByID(ctx context.Context, babyID string) (*models.Baby, error)
	Find(ctx context.Context, query *models.BabyQuery) ([]models.Baby, int64, error)
	Update(ctx context.Context, baby *models.Baby) error
	DeleteByID(ctx context.Context, babyID string) error
}
