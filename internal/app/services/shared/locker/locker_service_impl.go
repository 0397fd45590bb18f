package locker

import (
	"context"
	"fmt"
	"time"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type leaseLocker struct {
	redisRepo contracts.RedisRepository
	log       *zap.Logger
	now       func() time.Time
	newToken  func() string
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &leaseLocker{
		redisRepo: repo,
		log:       logger,
		now:       time.Now,
		newToken:  uuid.NewString,
	}
}

func (l *leaseLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (*models.Lease, error) {
	if ttl <= 0 {
		return nil, exceptions.ErrRedisSetNX(fmt.Errorf("lease ttl for %s must be positive, got %s", key, ttl))
	}

	lease := &models.Lease{
		Key:       key,
		Token:     l.newToken(),
		ExpiresAt: l.now().Add(ttl),
	}
	granted, err := l.redisRepo.TrySetNX(ctx, key, lease.Token, ttl)
	if err != nil {
		l.log.Error("locker.Acquire error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	if !granted {
		l.log.Debug("locker.Acquire key held by another instance",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil, nil
	}

	l.log.Info("locker.Acquire lease granted",
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockTTLKey, ttl),
		zap.Time(constvars.LoggingLockExpiresAtKey, lease.ExpiresAt),
	)
	return lease, nil
}

// Release is a no-op for a nil lease. A lease that already expired is not an
// error; one that vanished before its expiry means another holder took the key.
func (l *leaseLocker) Release(ctx context.Context, lease *models.Lease) error {
	if lease == nil {
		return nil
	}

	released, err := l.redisRepo.DeleteIfEqual(ctx, lease.Key, lease.Token)
	if err != nil {
		l.log.Error("locker.Release error calling redisRepo.DeleteIfEqual",
			zap.String(constvars.LoggingRedisKey, lease.Key),
			zap.Error(err),
		)
		return err
	}
	if released {
		l.log.Info("locker.Release lease released", zap.String(constvars.LoggingRedisKey, lease.Key))
		return nil
	}

	if lease.Expired(l.now()) {
		l.log.Info("locker.Release lease had already expired",
			zap.String(constvars.LoggingRedisKey, lease.Key),
			zap.Time(constvars.LoggingLockExpiresAtKey, lease.ExpiresAt),
		)
		return nil
	}
	return exceptions.ErrRedisUnlock(fmt.Errorf("lease on %s lost before %s", lease.Key, lease.ExpiresAt.Format(time.RFC3339)))
}
