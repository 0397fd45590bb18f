package models

import "time"

// Lease is a held redis lock. Token is unique per acquisition and is what
// Release compares against before deleting the key.
type Lease struct {
	Key       string
	Token     string
	ExpiresAt time.Time
}

func (l *Lease) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
