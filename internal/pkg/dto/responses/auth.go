package responses

import "barangay-health-service/internal/app/models"

type AuthToken struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	User      *models.User `json:"user"`
}
