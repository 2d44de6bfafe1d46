package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	attendancehandler "veriface/internal/attendance/handler"
	"veriface/internal/attendance/ports"
	"veriface/internal/attendance/service"
	attendancestore "veriface/internal/attendance/store"
	"veriface/internal/capture"
	"veriface/internal/conference"
	conferencehandler "veriface/internal/conference/handler"
	"veriface/internal/events"
	"veriface/internal/notify"
	"veriface/internal/platform/config"
	"veriface/internal/platform/httpserver"
	"veriface/internal/platform/logger"
	"veriface/internal/platform/postgres"
	platformredis "veriface/internal/platform/redis"
	"veriface/internal/recognition"
	"veriface/internal/runlock"
	httptransport "veriface/internal/transport/http"
	"veriface/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	checks := map[string]httptransport.HealthCheck{}

	var attendanceStore ports.AttendanceStore
	var conferenceStore conference.Store
	if cfg.Database.URL != "" {
		db, err := postgres.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(context.Background(), db); err != nil {
			return err
		}
		attendanceStore = attendancestore.NewPostgres(db)
		conferenceStore = conference.NewPostgres(db)
		checks["postgres"] = db.PingContext
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		attendanceStore = attendancestore.NewMemory()
		conferenceStore = conference.NewMemory()
	}

	gateway := recognition.New(cfg.Recognition.BaseURL, cfg.Recognition.APIKey, cfg.Recognition.Timeout,
		recognition.WithBreaker(circuit.New("recognition")))

	images, err := capture.New(cfg.Capture.Command, cfg.Capture.OutputPath, cfg.Capture.EnrollmentBucket,
		capture.WithLogger(log))
	if err != nil {
		return err
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithSimilarityThreshold(cfg.Pipeline.SimilarityThreshold),
		service.WithConcurrency(cfg.Pipeline.WorkerConcurrency),
	}

	if cfg.SMTP.Sender != "" {
		mailer, err := notify.New(cfg.SMTP.Addr, cfg.SMTP.Sender, notify.WithLogger(log))
		if err != nil {
			return err
		}
		opts = append(opts, service.WithNotifier(mailer))
	} else {
		log.Warn("SMTP_SENDER not set, absence notifications disabled")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		checks["redis"] = redisClient.Health

		lock, err := runlock.New(redisClient, cfg.Pipeline.RunLockTTL)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithRunLock(lock))
	}

	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := events.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, events.WithLogger(log))
		if err != nil {
			return err
		}
		defer publisher.Close()
		opts = append(opts, service.WithPublisher(publisher))
	}

	svc, err := service.New(attendanceStore, gateway, images, opts...)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(
		conferencehandler.New(conferenceStore, log),
		attendancehandler.New(svc, conferenceStore, log),
		checks,
	)
	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting veriface server", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
