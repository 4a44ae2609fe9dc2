package repository

import (
	"context"
	"fmt"
	"sync"

	"selfcare_portal/internal/model"
)

type memoryAccountRepository struct {
	mu      sync.RWMutex
	byPhone map[string]*model.Account
	byID    map[string]*model.Account
}

// NewMemoryAccountRepository creates an in-memory AccountRepository holding the given accounts.
// Phones and IDs must be unique.
func NewMemoryAccountRepository(accounts ...model.Account) (AccountRepository, error) {
	r := &memoryAccountRepository{
		byPhone: make(map[string]*model.Account, len(accounts)),
		byID:    make(map[string]*model.Account, len(accounts)),
	}
	for i := range accounts {
		a := accounts[i]
		if _, ok := r.byPhone[a.Phone]; ok {
			return nil, fmt.Errorf("duplicate account phone %s", a.Phone)
		}
		if _, ok := r.byID[a.ID]; ok {
			return nil, fmt.Errorf("duplicate account id %s", a.ID)
		}
		r.byPhone[a.Phone] = &a
		r.byID[a.ID] = &a
	}
	return r, nil
}

func (r *memoryAccountRepository) FindByPhone(_ context.Context, phone string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byPhone[phone]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memoryAccountRepository) FindByID(_ context.Context, id string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memoryAccountRepository) UpdatePasswordHash(_ context.Context, phone, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byPhone[phone]
	if !ok {
		return ErrAccountNotFound
	}
	a.PasswordHash = passwordHash
	return nil
}

func (r *memoryAccountRepository) Ping(context.Context) error { return nil }
