// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"planwise.io/planwise/internal/api/handlers"
	"planwise.io/planwise/internal/api/middleware"
	"planwise.io/planwise/internal/config"
	"planwise.io/planwise/internal/infrastructure"
	"planwise.io/planwise/internal/jobs"
	"planwise.io/planwise/internal/mail"
	"planwise.io/planwise/internal/notification"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/metrics"
	"planwise.io/planwise/internal/pkg/worker"
	"planwise.io/planwise/internal/service"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies with manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		DeliveryPoolSize: cfg.Worker.DeliveryPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	m := metrics.New("planwise")

	users := service.NewUserService(db.EntClient)
	events := service.NewEventService(db.EntClient)
	inbox := service.NewNotificationService(db.EntClient)
	push := service.NewPushService(db.EntClient)

	// Delivery sinks are optional: each is wired only when its transport
	// is configured, dispatch itself always works.
	var sinks []notification.Sink
	if cfg.SMTP.Configured() {
		mailer, err := mail.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			pools.Shutdown()
			db.Close()
			return nil, fmt.Errorf("init smtp mailer: %w", err)
		}
		sinks = append(sinks, notification.NewEmailRelay(inbox, mailer, m))
	} else {
		logger.Warn("smtp not configured, email delivery disabled")
	}
	if cfg.Push.Configured() {
		sinks = append(sinks, notification.NewWebPushRelay(inbox, push, cfg.Push, m))
	} else {
		logger.Warn("vapid keys not configured, web push delivery disabled")
	}

	dispatcher := notification.NewDispatcher(inbox, pools, m, sinks...)
	notifier := notification.NewTriggers(dispatcher)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewEventReminderWorker(
		reminderEventSource{events: events},
		inbox,
		notifier,
		m,
		cfg.Reminder.Lookahead,
	))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		inbox,
		m,
		cfg.Retention.NotificationAge,
	))

	periodic := []*river.PeriodicJob{
		// Hourly reminder scan; the interval matches the scan lookahead so
		// consecutive windows tile.
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Reminder.Lookahead),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.EventReminderArgs{}, nil
			},
			nil,
		),
		// Daily retention sweep, plus once on startup so long-stopped
		// deployments catch up immediately.
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	if err := db.InitRiverClient(workers, cfg.River, periodic); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river: %w", err)
	}

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		ExpiresIn:  cfg.JWT.ExpiresIn,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		Pool:     db.Pool,
		Workers:  pools,
		JWTCfg:   jwtCfg,
		PushCfg:  cfg.Push,
		Users:    users,
		Events:   events,
		Inbox:    inbox,
		Push:     push,
		Notifier: notifier,
	})

	logger.Info("application bootstrapped",
		zap.Int("sinks", len(sinks)),
		zap.Duration("reminder_lookahead", cfg.Reminder.Lookahead),
		zap.Duration("notification_retention", cfg.Retention.NotificationAge),
	)

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg),
		DB:     db,
		Pools:  pools,
	}, nil
}

// reminderEventSource adapts EventService to the reminder scan.
type reminderEventSource struct {
	events *service.EventService
}

func (s reminderEventSource) EventsInWindow(ctx context.Context, from, to time.Time) ([]jobs.ReminderEvent, error) {
	rows, err := s.events.EventsInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]jobs.ReminderEvent, 0, len(rows))
	for _, ev := range rows {
		owner := ev.Edges.Owner
		if owner == nil {
			continue
		}
		out = append(out, jobs.ReminderEvent{
			EventID: ev.ID,
			OwnerID: owner.ID,
			Title:   ev.Title,
			Date:    ev.Date,
		})
	}
	return out, nil
}
