// store.go
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
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/propiq/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SessionStore keeps application sessions in the sessions table
type SessionStore struct {
	DB  *gorm.DB
	TTL time.Duration

	now func() time.Time
}

// NewSessionStore builds a session store whose sessions last ttl
func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	return &SessionStore{DB: db, TTL: ttl, now: time.Now}
}

// Create opens a session for identity
func (s *SessionStore) Create(ctx context.Context, identity Identity) (*Session, error) {
	row := models.Session{
		Token:     uuid.NewString(),
		UserID:    identity.UserID,
		Email:     identity.Email,
		ExpiresAt: s.now().UTC().Add(s.TTL),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return toSession(row), nil
}

// Lookup returns the live session for token, or nil when it is unknown or expired
func (s *SessionStore) Lookup(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	var row models.Session
	err := s.DB.WithContext(ctx).
		Session(&gorm.Session{Logger: s.DB.Logger.LogMode(logger.Silent)}).
		Where("token = ? AND expires_at > ?", token, s.now().UTC()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toSession(row), nil
}

// Delete ends a session
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

// Purge removes expired sessions
func (s *SessionStore) Purge(ctx context.Context) (int64, error) {
	result := s.DB.WithContext(ctx).Where("expires_at <= ?", s.now().UTC()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func toSession(row models.Session) *Session {
	return &Session{
		Token:     row.Token,
		UserID:    row.UserID,
		Email:     row.Email,
		ExpiresAt: row.ExpiresAt,
	}
}
