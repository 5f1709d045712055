// health.go
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
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Pinger reports whether the auth provider is reachable
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Auth         string            `json:"auth"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every dependency answered
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the database and the auth provider
func HealthCheck(ctx context.Context, dbType string, db *gorm.DB, auth Pinger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	fail := func(detail string, err error, format string) {
		result.Status = "unhealthy"
		result.Details[detail] = err.Error()
		msg := fmt.Sprintf(format, err)
		if result.ErrorMessage != "" {
			msg = result.ErrorMessage + "; " + msg
		}
		result.ErrorMessage = msg
		log.Printf("Health check failed - %s", fmt.Sprintf(format, err))
	}

	sqlDB, err := db.DB()
	switch {
	case err != nil:
		result.Database = "error"
		fail("database_error", err, "Database connection error: %v")
	default:
		if err := sqlDB.PingContext(ctx); err != nil {
			result.Database = "unreachable"
			fail("database_ping_error", err, "Database ping failed: %v")
		} else {
			result.Database = "ok"
			result.Details["database_type"] = dbType
		}
	}

	if auth == nil {
		result.Auth = "disabled"
	} else if err := auth.Ping(ctx); err != nil {
		result.Auth = "unreachable"
		fail("auth_error", err, "Auth provider ping failed: %v")
	} else {
		result.Auth = "ok"
		result.Details["auth_provider"] = auth.Name()
	}

	if result.Healthy() {
		log.Println("Health check passed - all systems operational")
	}
	return result
}
