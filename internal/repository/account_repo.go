package repository

import (
	"context"
	"errors"
	"fmt"

	"selfcare_portal/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrAccountNotFound is returned by updates addressing a phone with no account
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines operations for subscriber account data.
// Lookups return (nil, nil) when nothing matches; the service layer decides what that means.
type AccountRepository interface {
	FindByPhone(ctx context.Context, phone string) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
	UpdatePasswordHash(ctx context.Context, phone, passwordHash string) error
	Ping(ctx context.Context) error
}

// DBTX is the subset of *pgxpool.Pool used by the repository
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type accountRepository struct {
	db DBTX
}

// NewAccountRepository creates a PostgreSQL backed AccountRepository
func NewAccountRepository(db DBTX) AccountRepository {
	return &accountRepository{db: db}
}

const selectAccount = `SELECT id, phone, password_hash, balance, tariff_id, tariff_name, tariff_price, tariff_description, next_payment_date, is_active FROM accounts`

func scanAccount(row pgx.Row) (*model.Account, error) {
	a := &model.Account{}
	err := row.Scan(&a.ID, &a.Phone, &a.PasswordHash, &a.Balance,
		&a.Tariff.ID, &a.Tariff.Name, &a.Tariff.Price, &a.Tariff.Description,
		&a.NextPaymentDate, &a.IsActive)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindByPhone retrieves an account by its canonical phone number
func (r *accountRepository) FindByPhone(ctx context.Context, phone string) (*model.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, selectAccount+` WHERE phone = $1`, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by phone: %w", err)
	}
	return a, nil
}

// FindByID retrieves an account by its identifier
func (r *accountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, selectAccount+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by ID: %w", err)
	}
	return a, nil
}

// UpdatePasswordHash replaces the stored hash for the account owning phone
func (r *accountRepository) UpdatePasswordHash(ctx context.Context, phone, passwordHash string) error {
	sql := `UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE phone = $2`
	tag, err := r.db.Exec(ctx, sql, passwordHash, phone)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Ping checks that the database is reachable
func (r *accountRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
