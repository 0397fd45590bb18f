package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Actor is the authenticated caller resolved from a bearer token.
type Actor struct {
	UserID    string
	Role      string
	SessionID string
}

func (s *Session) Actor() *Actor {
	return &Actor{
		UserID:    s.UserID,
		Role:      s.Role,
		SessionID: s.SessionID,
	}
}
