// local.go
//
// PropIQ, a property, lease and tenant management service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propiq.
// propiq is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propiq is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propiq.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	invalidCredentials = "Invalid login credentials"
	alreadyRegistered  = "User already registered"
	passwordTooShort   = "Password should be at least 6 characters."
	minPasswordLength  = 6
)

// LocalProvider authenticates against bcrypt hashes in the accounts table
type LocalProvider struct {
	DB   *gorm.DB
	Cost int
}

// NewLocalProvider builds a provider over the accounts table
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{DB: db, Cost: bcrypt.DefaultCost}
}

func (p *LocalProvider) Name() string {
	return "local"
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	var account models.Account
	err := p.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.AuthError{Message: invalidCredentials}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, &types.AuthError{Message: invalidCredentials, Err: err}
	}

	return &Identity{UserID: account.ID, Email: account.Email}, nil
}

// SignUp registers an account and signs it in immediately
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	if len(password) < minPasswordLength {
		return nil, &types.AuthError{Message: passwordTooShort}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.Cost)
	if err != nil {
		return nil, &types.AuthError{Message: err.Error(), Err: err}
	}

	account := models.Account{Email: normalizeEmail(email), PasswordHash: string(hash)}
	err = p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Where("email = ?", account.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &types.AuthError{Message: alreadyRegistered}
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		return nil, err
	}

	return &Identity{UserID: account.ID, Email: account.Email}, nil
}

func (p *LocalProvider) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
