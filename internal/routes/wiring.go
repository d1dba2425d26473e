package routes

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// NewPostgresApp builds the production App on top of gorm. The returned
// cleanup flushes pending audit events and closes the Redis client.
func NewPostgresApp(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) (App, func(), error) {
	tx := infraRepo.NewTxRunner(db, cfg.TxMaxRetries, log)
	users := infraRepo.NewUserGormRepository(tx)
	auditLogger := audit.New(db)

	app := App{
		Config: cfg,
		Log:    log,
		Clock:  clock.Real{},

		Appointments: infraRepo.NewAppointmentGormRepository(tx),
		Payments:     infraRepo.NewPaymentGormRepository(tx),
		Schedule:     infraRepo.NewScheduleGormRepository(tx),
		Catalog:      infraRepo.NewServiceGormRepository(tx),
		Loyalty:      users,
		AuditLogs:    auditLogger,

		Audit:    audit.NewDispatcher(auditLogger, log),
		Locker:   lock.Noop{},
		Notifier: notify.NewLogNotifier(log),
	}

	cleanup := func() { app.Audit.Close() }

	if cfg.RedisURL != "" {
		client, err := lock.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			app.Audit.Close()
			return App{}, nil, err
		}
		app.Locker = lock.NewRedisLocker(client, cfg.LockTTL, log)
		cleanup = func() {
			app.Audit.Close()
			_ = client.Close()
		}
		log.Info("booking lock enabled", zap.Duration("ttl", cfg.LockTTL))
	} else {
		log.Warn("REDIS_URL not set, booking lock limited to database guarantees")
	}

	if cfg.ProofStorageEnabled() {
		app.Proofs = storage.NewS3ProofStore(cfg.S3)
		log.Info("proof uploads enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.Metrics = metrics.NewBookingMetrics(reg)
		app.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	return app, cleanup, nil
}
