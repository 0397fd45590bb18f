package utils

import (
	"strings"
	"time"

	"barangay-health-service/internal/pkg/constvars"
)

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(constvars.DateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

func IsValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
