package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/api"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/broadcast"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/service"
	mongodb "github.com/Mohamed-Rirash/appointment-app-sub001/internal/infrastructure/db/mongo"
	redisdb "github.com/Mohamed-Rirash/appointment-app-sub001/internal/infrastructure/db/redis"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/infrastructure/notify"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/infrastructure/queue"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/pkg/config"
	"github.com/Mohamed-Rirash/appointment-app-sub001/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Data stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	citizenRepo := mongodb.NewCitizenRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	authorizer := mongodb.NewMembershipAuthorizer(db)

	indexCtx, cancelIndexes := context.WithTimeout(ctx, 30*time.Second)
	defer cancelIndexes()
	for _, ensure := range []func(context.Context) error{
		appointmentRepo.EnsureIndexes,
		citizenRepo.EnsureIndexes,
		authRepo.EnsureIndexes,
		authorizer.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Event broadcast ---
	broker := broadcast.NewBroker(cfg.Lifecycle.BroadcastBuffer, log)
	defer broker.Close()

	// --- Notification pipeline ---
	var notifier ports.Notifier = notify.NoopNotifier{}
	if cfg.SMS.WebhookURL != "" {
		notifier = notify.NewSMSWebhookNotifier(cfg.SMS.WebhookURL, cfg.SMS.Token)
	}
	dedup := redisdb.NewNotificationDedup(rdb)
	dispatcher := queue.NewDispatcher(cfg.SMS.Workers, notifier, dedup, log)
	dispatcher.Start(ctx)

	// --- Services ---
	appointmentService := service.NewAppointmentService(
		appointmentRepo,
		citizenRepo,
		authorizer,
		broker,
		dispatcher,
		service.Config{AllowEarlyComplete: cfg.Lifecycle.AllowEarlyComplete},
		log,
	)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	e := api.NewRouter(api.Dependencies{
		Appointments: appointmentService,
		Auth:         authService,
		Memberships:  authorizer,
		Broker:       broker,
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}
	log.Info().Msg("http server stopped")
}
