package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/you/notehub/domain"
)

const resetEmailSubject = "Reset your password"

// PasswordResetServiceImpl implements domain.PasswordResetService.
//
// Reset tokens are stateless signed credentials: they cannot be revoked
// individually and stay valid until their expiry. A successful reset does
// invalidate the user's session, so a stolen cookie stops working once the
// owner rotates the password.
type PasswordResetServiceImpl struct {
	userRepo        domain.UserRepository
	sessionRepo     domain.SessionRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
	frontendOrigin  string
	tokenTTL        time.Duration
	logger          *slog.Logger
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
	frontendOrigin string,
	tokenTTL time.Duration,
	logger *slog.Logger,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
		frontendOrigin:  strings.TrimRight(frontendOrigin, "/"),
		tokenTTL:        tokenTTL,
		logger:          logger,
	}
}

// RequestReset implements domain.PasswordResetService. It succeeds whether or
// not the email is registered; the only difference is whether an email goes
// out. Callers must surface the same response in both cases.
func (s *PasswordResetServiceImpl) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up email: %w", err)
	}

	token, err := s.tokenSvc.Issue(user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	link := s.frontendOrigin + "/reset-password?token=" + url.QueryEscape(token)
	body := fmt.Sprintf(
		`<p>To reset your password, follow <a href="%s">this link</a>. It expires in %d minutes.</p>`,
		link, int(s.tokenTTL.Minutes()),
	)

	if err := s.notificationSvc.SendEmail(user.Email, resetEmailSubject, body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info("reset email dispatched", "user_id", user.ID)
	return nil
}

// ResetPassword implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenSvc.Verify(token)
	if err != nil {
		return err
	}

	// The subject must still exist and still carry the email the token was
	// issued for; covers accounts deleted or re-registered after issuance.
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(user.Email, claims.Email) {
		return domain.ErrUserNotFound
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	// Drop the active session; other outstanding reset tokens die with their
	// own expiry.
	if err := s.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		s.logger.Error("failed to drop session after password reset", "user_id", user.ID, "error", err)
	}

	return nil
}
