package contracts

import (
	"context"

	"barangay-health-service/internal/app/models"
)

type NotificationPublisher interface {
	Publish(ctx context.Context, notification *models.Notification) error
}
