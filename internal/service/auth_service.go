package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"selfcare_portal/internal/model"
	"selfcare_portal/internal/repository"
	"selfcare_portal/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrInvalidCode        = errors.New("invalid confirmation code")
	ErrAccountNotFound    = errors.New("account not found")
)

// AuthService runs login and the password-reset flow.
// Phones passed in are expected to be canonical already.
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*model.Account, string, error)
	RequestReset(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) error
	SetPassword(ctx context.Context, phone, code, newPassword string) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
}

type authService struct {
	accounts repository.AccountRepository
	jwtUtil  *utils.JWTUtil
	codes    CodeVerifier
	sms      SMSSender
	smsDelay time.Duration
	log      *zap.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewAuthService creates a new AuthService.
// smsDelay is waited on every reset request, registered phone or not.
func NewAuthService(accounts repository.AccountRepository, jwtUtil *utils.JWTUtil, codes CodeVerifier, sms SMSSender, smsDelay time.Duration, log *zap.Logger) AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &authService{
		accounts: accounts,
		jwtUtil:  jwtUtil,
		codes:    codes,
		sms:      sms,
		smsDelay: smsDelay,
		log:      log,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Login authenticates a subscriber and returns a signed session token
func (s *authService) Login(ctx context.Context, phone, password string) (*model.Account, string, error) {
	account, err := s.accounts.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding account by phone: %w", err)
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.jwtUtil.GenerateToken(account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info("subscriber logged in", zap.String("account_id", account.ID))
	account.PasswordHash = ""
	return account, token, nil
}

// RequestReset sends a reset code when phone is registered. The outcome is
// the same for unknown phones, and both take smsDelay counted from the start.
func (s *authService) RequestReset(ctx context.Context, phone string) error {
	deadline := s.now().Add(s.smsDelay)

	account, err := s.accounts.FindByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("error finding account by phone: %w", err)
	}

	if account != nil {
		code, err := s.codes.Issue(ctx, phone)
		if err != nil {
			return fmt.Errorf("failed to issue reset code: %w", err)
		}
		if err := s.sms.SendResetCode(ctx, phone, code); err != nil {
			return fmt.Errorf("failed to send reset code: %w", err)
		}
	}

	return s.sleep(ctx, deadline.Sub(s.now()))
}

// VerifyCode checks the reset code without consuming it
func (s *authService) VerifyCode(ctx context.Context, phone, code string) error {
	ok, err := s.codes.Verify(ctx, phone, code)
	if err != nil {
		return fmt.Errorf("failed to verify reset code: %w", err)
	}
	if !ok {
		return ErrInvalidCode
	}
	return nil
}

// SetPassword re-checks the code, replaces the password hash and consumes the code
func (s *authService) SetPassword(ctx context.Context, phone, code, newPassword string) error {
	if err := s.VerifyCode(ctx, phone, code); err != nil {
		return err
	}

	account, err := s.accounts.FindByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("error finding account by phone: %w", err)
	}
	if account == nil {
		return ErrAccountNotFound
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.accounts.UpdatePasswordHash(ctx, phone, hash); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.codes.Consume(ctx, phone); err != nil {
		// The password is already changed; a leftover code expires on its own.
		s.log.Warn("reset code not consumed", zap.String("account_id", account.ID), zap.Error(err))
	}

	s.log.Info("password changed via reset", zap.String("account_id", account.ID))
	return nil
}

// GetAccount loads the account a session token points at
func (s *authService) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding account by ID: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	account.PasswordHash = ""
	return account, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
