// health_test.go
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

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localnerve/propiq/internal/testutil"
)

type pinger struct{ err error }

func (p pinger) Name() string              { return "fake" }
func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	db := testutil.NewDB(t)

	result := HealthCheck(context.Background(), "sqlite", db, pinger{})
	assert.True(t, result.Healthy())
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Auth)
	assert.Equal(t, "fake", result.Details["auth_provider"])

	result = HealthCheck(context.Background(), "sqlite", db, pinger{err: errors.New("connection refused")})
	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Auth)
	assert.Contains(t, result.ErrorMessage, "connection refused")
}

func TestHealthCheckClosedDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, _ := db.DB()
	sqlDB.Close()

	result := HealthCheck(context.Background(), "sqlite", db, nil)
	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Database)
	assert.Equal(t, "disabled", result.Auth)
}
