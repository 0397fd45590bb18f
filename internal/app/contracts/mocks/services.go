package mocks

import (
	"context"
	"io"
	"time"

	"barangay-health-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type SessionService struct {
	mock.Mock
}

func (m *SessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) DeleteIfEqual(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

type ResourceLimiter struct {
	mock.Mock
}

func (m *ResourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, quota int) (bool, time.Duration, error) {
	args := m.Called(ctx, group, resource, window, quota)
	retryAfter, _ := args.Get(1).(time.Duration)
	return args.Bool(0), retryAfter, args.Error(2)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) Acquire(ctx context.Context, key string, ttl time.Duration) (*models.Lease, error) {
	args := m.Called(ctx, key, ttl)
	lease, _ := args.Get(0).(*models.Lease)
	return lease, args.Error(1)
}

func (m *LockerService) Release(ctx context.Context, lease *models.Lease) error {
	return m.Called(ctx, lease).Error(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, size, contentType, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type NotificationPublisher struct {
	mock.Mock
}

func (m *NotificationPublisher) Publish(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}
