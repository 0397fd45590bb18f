package utils

import (
	"path/filepath"
	"strings"

	"barangay-health-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateAttachmentName keeps the lower-cased extension of the uploaded file
// and replaces the rest with a random id.
func GenerateAttachmentName(originalFileName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalFileName))
}
