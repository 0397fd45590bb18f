package contracts

import "barangay-health-service/internal/app/models"

type AccessGate interface {
	// Decide is pure: a denial is reported in the Decision, never as an error.
	Decide(actor *models.Actor, resource, action string, target *models.Target) models.Decision
	// Authorize is Decide plus the transport error for a denial.
	Authorize(actor *models.Actor, resource, action string, target *models.Target) (models.Decision, error)
}
