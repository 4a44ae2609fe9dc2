package config

import (
	"fmt"
	"time"

	"selfcare_portal/internal/model"
	"selfcare_portal/internal/utils"
)

// SeedAccounts returns the demo subscriber with password hashed from cfg.SeedPassword
func (c *AppConfig) SeedAccounts() ([]model.Account, error) {
	hash, err := utils.HashPassword(c.SeedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	return []model.Account{
		{
			ID:           "1",
			Phone:        "79001234567",
			PasswordHash: hash,
			Balance:      542,
			Tariff: model.Tariff{
				ID:    "1",
				Name:  "Безлимит 50 Мбит/с",
				Price: 450,
			},
			NextPaymentDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			IsActive:        true,
		},
	}, nil
}
