package vaccinations

import (
	"context"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const reminderLockTTL = 2 * time.Minute

// ReminderWorker periodically publishes a vaccination.due notification for
// every dose falling inside the reminder window. Only the instance holding
// the leader lock publishes.
type ReminderWorker struct {
	log             *zap.Logger
	cfg             config.AppReminder
	locker          contracts.LockerService
	vaccinationRepo contracts.VaccinationRepository
	babyRepo        contracts.BabyRepository
	publisher       contracts.NotificationPublisher
	limiter         *rate.Limiter
	cron            *cron.Cron
	cancel          context.CancelFunc
	now             func() time.Time
}

func NewReminderWorker(
	log *zap.Logger,
	cfg config.AppReminder,
	locker contracts.LockerService,
	vaccinationRepo contracts.VaccinationRepository,
	babyRepo contracts.BabyRepository,
	publisher contracts.NotificationPublisher,
) *ReminderWorker {
	limit := rate.Inf
	if cfg.PublishRatePerSecond > 0 {
		limit = rate.Limit(cfg.PublishRatePerSecond)
	}
	burst := cfg.PublishBurst
	if burst <= 0 {
		burst = 1
	}

	return &ReminderWorker{
		log:             log,
		cfg:             cfg,
		locker:          locker,
		vaccinationRepo: vaccinationRepo,
		babyRepo:        babyRepo,
		publisher:       publisher,
		limiter:         rate.NewLimiter(limit, burst),
		now:             time.Now,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	c := cron.New()
	_, err := c.AddFunc(w.cfg.CronSpec, func() { w.runOnce(runCtx) })
	if err != nil {
		w.log.Warn("vaccinations.ReminderWorker invalid cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, w.cfg.CronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.ReminderFallbackCronSpec, func() { w.runOnce(runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("vaccinations.ReminderWorker started",
		zap.String(constvars.LoggingCronSpecKey, w.cfg.CronSpec),
	)
}

// Stop cancels in-flight runs and waits for them to return.
func (w *ReminderWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *ReminderWorker) runOnce(ctx context.Context) int {
	lease, err := w.locker.Acquire(ctx, constvars.ReminderLeaderLockKey, reminderLockTTL)
	if err != nil {
		w.log.Warn("vaccinations.ReminderWorker leader lock attempt failed", zap.Error(err))
		return 0
	}
	if lease == nil {
		w.log.Info("vaccinations.ReminderWorker leader lock not acquired; another instance is running")
		return 0
	}
	defer func() {
		if err := w.locker.Release(context.WithoutCancel(ctx), lease); err != nil {
			w.log.Warn("vaccinations.ReminderWorker failed to release leader lock", zap.Error(err))
		}
	}()

	from := w.now()
	to := from.AddDate(0, 0, w.cfg.WindowDays)
	due, err := w.vaccinationRepo.FindDueBetween(ctx, from, to)
	if err != nil {
		w.log.Warn("vaccinations.ReminderWorker error calling VaccinationRepository.FindDueBetween", zap.Error(err))
		return 0
	}

	parents := make(map[string]*models.Baby)
	published := 0
	for i := range due {
		vaccination := &due[i]
		if vaccination.NextDueDate == nil {
			continue
		}

		baby, ok := parents[vaccination.BabyID]
		if !ok {
			baby, err = w.babyRepo.FindByID(ctx, vaccination.BabyID)
			if err != nil {
				w.log.Warn("vaccinations.ReminderWorker error calling BabyRepository.FindByID",
					zap.String(constvars.LoggingBabyIDKey, vaccination.BabyID),
					zap.Error(err),
				)
				continue
			}
			parents[vaccination.BabyID] = baby
		}
		if baby == nil {
			continue
		}

		if err := w.limiter.Wait(ctx); err != nil {
			w.log.Info("vaccinations.ReminderWorker run cancelled", zap.Int(constvars.LoggingCountKey, published))
			return published
		}

		if err := w.publisher.Publish(ctx, dueNotification(baby, vaccination, from)); err != nil {
			w.log.Warn("vaccinations.ReminderWorker error calling NotificationPublisher.Publish",
				zap.String(constvars.LoggingVaccinationIDKey, vaccination.ID),
				zap.Error(err),
			)
			continue
		}
		published++
	}

	w.log.Info("vaccinations.ReminderWorker run finished",
		zap.Int(constvars.LoggingCountKey, published),
		zap.Int(constvars.LoggingDaysKey, w.cfg.WindowDays),
	)
	return published
}

func dueNotification(baby *models.Baby, vaccination *models.Vaccination, now time.Time) *models.Notification {
	return &models.Notification{
		Type:      constvars.NotificationVaccinationDue,
		Recipient: baby.ParentID,
		Subject:   vaccination.VaccineType + " due",
		Payload: map[string]string{
			"babyId":        baby.ID,
			"babyName":      baby.FirstName + " " + baby.LastName,
			"vaccinationId": vaccination.ID,
			"vaccineType":   vaccination.VaccineType,
			"nextDueDate":   vaccination.NextDueDate.Format(constvars.DateLayout),
		},
		OccurredAt: now,
	}
}
