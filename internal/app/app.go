package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/you/notehub/internal/config"
	httpx "github.com/you/notehub/internal/http"
	"github.com/you/notehub/internal/http/handlers"
	"github.com/you/notehub/internal/infrastructure/auth"
	"github.com/you/notehub/internal/infrastructure/database"
	"github.com/you/notehub/internal/infrastructure/notifications"
	"github.com/you/notehub/internal/infrastructure/repositories"
	"github.com/you/notehub/internal/services"
)

func Run(cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb, &repositories.DBUser{}, &repositories.DBNote{}); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret)
	notificationSvc, err := notifications.NewSMTPService(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, logger,
	)
	if err != nil {
		return err
	}

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.AccessTTL, cfg.RefreshTTL)
	noteRepo := repositories.NewNoteRepository(gdb)

	// Services
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc)
	resetSvc := services.NewPasswordResetService(
		userRepo, sessionRepo, passwordSvc, tokenSvc, notificationSvc,
		cfg.FrontendOrigin, cfg.ResetTokenTTL, logger,
	)
	noteSvc := services.NewNoteService(noteRepo)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc, resetSvc)
	noteH := handlers.NewNoteHandlers(noteSvc)

	r := httpx.BuildRouter(authH, noteH, sessionRepo, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}
