package jwtmanager

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
)

// sessionClaims is the token body. exp comes from RegisteredClaims.
type sessionClaims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 session tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	if cfg.JWT.ExpTimeInHour <= 0 {
		return nil, errors.New("JWT_EXP_TIME_IN_HOUR must be positive")
	}

	return &JWTManager{
		secret: []byte(secret),
		ttl:    time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
		now:    time.Now,
	}, nil
}

func (j *JWTManager) TokenLifetime() time.Duration {
	return j.ttl
}

// CreateToken signs the session. session.ExpiresAt is used as exp when set,
// otherwise now + lifetime.
func (j *JWTManager) CreateToken(session *models.Session) (string, error) {
	if session == nil || session.UserID == "" || session.SessionID == "" {
		return "", errors.New("session with user and session id is required")
	}

	now := j.now()
	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(j.ttl)
	}

	claims := sessionClaims{
		UserID:    session.UserID,
		Role:      session.Role,
		SessionID: session.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// ParseToken verifies signature, algorithm and expiry and returns the session
// the token was issued for.
func (j *JWTManager) ParseToken(token string) (*models.Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token is required")
	}

	claims := new(sessionClaims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf(constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.UserID == "" || claims.SessionID == "" || claims.ExpiresAt == nil {
		return nil, errors.New("token is missing required claims")
	}

	return &models.Session{
		SessionID: claims.SessionID,
		UserID:    claims.UserID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ contracts.TokenManager = (*JWTManager)(nil)
