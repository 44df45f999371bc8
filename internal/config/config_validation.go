// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// Password storage modes accepted in App.PasswordHashing.
const (
	PasswordHashingPlain  = "plain"
	PasswordHashingBcrypt = "bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.MealDBURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad mealdb url %q", ErrInvalidAdapterConfigs, cfg.Adapter.MealDBURL)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.App.PasswordHashing {
	case PasswordHashingPlain, PasswordHashingBcrypt:
	default:
		return fmt.Errorf("%w: unknown password hashing %q", ErrInvalidAppConfigs, cfg.App.PasswordHashing)
	}

	return nil
}
