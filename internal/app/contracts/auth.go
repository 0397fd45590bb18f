package contracts

import (
	"context"
	"time"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error)
	Logout(ctx context.Context, actor *models.Actor) error
	VerifyToken(ctx context.Context, token string) (*models.Actor, error)
}

type TokenManager interface {
	CreateToken(session *models.Session) (string, error)
	ParseToken(token string) (*models.Session, error)
	TokenLifetime() time.Duration
}
