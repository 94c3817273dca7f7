package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"groupschedule/config"
	_ "groupschedule/docs"
	"groupschedule/internal/adapters/auth"
	"groupschedule/internal/adapters/email"
	httpdelivery "groupschedule/internal/delivery/http"
	"groupschedule/internal/delivery/http/controllers"
	"groupschedule/internal/metrics"
	"groupschedule/internal/repository/postgres"
	"groupschedule/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Group Schedule API
// @version 1.0
// @description Create date polls, collect yes/maybe/no answers and find the best date.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return err
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		logger.Info("database schema ready")
	}

	gate, err := auth.NewPassphraseGate(cfg.PassphraseHashing, cfg.BcryptCost)
	if err != nil {
		return err
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}

	m := metrics.NewManager()

	eventRepo := postgres.NewEventRepository(db)
	dateOptionRepo := postgres.NewDateOptionRepository(db)
	responseRepo := postgres.NewResponseRepository(db)

	eventService := services.NewEventService(eventRepo, dateOptionRepo, responseRepo, gate, m, cfg.AppURL, cfg.RequestTimeout)
	responseService := services.NewResponseService(eventRepo, dateOptionRepo, responseRepo, m, cfg.RequestTimeout)
	exportService := services.NewExportService(eventService)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	invitationService := services.NewInvitationService(eventRepo, dateOptionRepo, gate, emailService, m, cfg.AppURL, cfg.RequestTimeout, logger)

	handler := httpdelivery.NewRouter(
		httpdelivery.RouterConfig{Logger: logger, AllowedOrigins: cfg.CORSAllowedOrigins, Metrics: m},
		controllers.NewEventController(logger, eventService, exportService, invitationService),
		controllers.NewResponseController(logger, responseService),
		controllers.NewHealthController(logger, db, cfg.RequestTimeout),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
