package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"selfcare_portal/internal/repository"
)

const resetCodeDigits = 6

// CodeVerifier issues and checks the one-time codes that authorize a password reset
type CodeVerifier interface {
	// Issue returns the code the subscriber must present for phone
	Issue(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) (bool, error)
	// Consume invalidates the code once the password has been changed
	Consume(ctx context.Context, phone string) error
}

// StaticCodeVerifier accepts one fixed code for every phone.
// It stands in for a real OTP flow in development and demos.
type StaticCodeVerifier struct {
	code string
}

// NewStaticCodeVerifier creates a verifier accepting only code
func NewStaticCodeVerifier(code string) *StaticCodeVerifier {
	return &StaticCodeVerifier{code: code}
}

func (v *StaticCodeVerifier) Issue(context.Context, string) (string, error) {
	return v.code, nil
}

func (v *StaticCodeVerifier) Verify(_ context.Context, _ string, code string) (bool, error) {
	return constantTimeEqual(v.code, code), nil
}

func (v *StaticCodeVerifier) Consume(context.Context, string) error {
	return nil
}

// StoredCodeVerifier generates a random code per request, keeps it for ttl
// and forgets it after a successful password change.
type StoredCodeVerifier struct {
	repo     repository.ResetCodeRepository
	ttl      time.Duration
	generate func() (string, error)
}

// NewStoredCodeVerifier creates a verifier backed by repo
func NewStoredCodeVerifier(repo repository.ResetCodeRepository, ttl time.Duration) *StoredCodeVerifier {
	return &StoredCodeVerifier{repo: repo, ttl: ttl, generate: generateNumericCode}
}

func (v *StoredCodeVerifier) Issue(ctx context.Context, phone string) (string, error) {
	code, err := v.generate()
	if err != nil {
		return "", err
	}
	if err := v.repo.Save(ctx, phone, code, v.ttl); err != nil {
		return "", fmt.Errorf("failed to store reset code: %w", err)
	}
	return code, nil
}

func (v *StoredCodeVerifier) Verify(ctx context.Context, phone, code string) (bool, error) {
	stored, err := v.repo.Get(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("failed to load reset code: %w", err)
	}
	if stored == "" {
		return false, nil
	}
	return constantTimeEqual(stored, code), nil
}

func (v *StoredCodeVerifier) Consume(ctx context.Context, phone string) error {
	if err := v.repo.Delete(ctx, phone); err != nil {
		return fmt.Errorf("failed to consume reset code: %w", err)
	}
	return nil
}

func generateNumericCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%0*d", resetCodeDigits, n.Int64()), nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
