package contracts

import (
	"context"
	"time"

	"barangay-health-service/internal/app/models"
)

type LockerService interface {
	// Acquire returns a nil lease and no error when another holder owns key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (*models.Lease, error)
	// Release deletes the key only while it still carries the lease token.
	Release(ctx context.Context, lease *models.Lease) error
}
