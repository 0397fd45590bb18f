package contracts

import (
	"context"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, actor *models.Actor) (*models.User, error)
	UpdateProfile(ctx context.Context, actor *models.Actor, request *requests.UpdateProfile) (*models.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
