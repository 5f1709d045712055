// config.go
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

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Auth provider names
const (
	AuthProviderAuthorizer = "authorizer"
	AuthProviderLocal      = "local"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlite3, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Authentication configuration
	AuthProvider  string
	AuthzURL      string
	AuthzClientID string

	// AuthzRedirectURL is where Authorizer sends users back to, defaults to http://localhost:PORT
	AuthzRedirectURL string
	SessionCookie    string
	SessionTTL       time.Duration

	// Domain defaults
	DefaultCountry string

	// Cron expressions for the maintenance jobs, empty disables a job
	LeaseActivationSchedule string
	SessionPurgeSchedule    string
}

// defaults are applied before the environment and optional config file are read
var defaults = map[string]interface{}{
	"PORT":                      "3000",
	"DB_TYPE":                   "postgres",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_DATABASE":               "",
	"DB_USER":                   "",
	"DB_PASSWORD":               "",
	"DB_CONNECTION_LIMIT":       5,
	"AUTH_PROVIDER":             AuthProviderAuthorizer,
	"AUTHZ_URL":                 "",
	"AUTHZ_CLIENT_ID":           "",
	"AUTHZ_REDIRECT_URL":        "",
	"SESSION_COOKIE":            "propiq_session",
	"SESSION_TTL":               "168h",
	"SESSION_PURGE_SCHEDULE":    "@hourly",
	"DEFAULT_COUNTRY":           "Australia",
	"LEASE_ACTIVATION_SCHEDULE": "",
}

// Load loads configuration from environment variables, and from the file named
// by PROPIQ_CONFIG when set (environment wins over the file).
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := os.Getenv("PROPIQ_CONFIG"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                    v.GetString("PORT"),
		DBType:                  strings.ToLower(v.GetString("DB_TYPE")),
		DBHost:                  v.GetString("DB_HOST"),
		DBPort:                  v.GetString("DB_PORT"),
		DBDatabase:              v.GetString("DB_DATABASE"),
		DBUser:                  v.GetString("DB_USER"),
		DBPassword:              v.GetString("DB_PASSWORD"),
		DBConnectionLimit:       v.GetInt("DB_CONNECTION_LIMIT"),
		AuthProvider:            strings.ToLower(v.GetString("AUTH_PROVIDER")),
		AuthzURL:                v.GetString("AUTHZ_URL"),
		AuthzClientID:           v.GetString("AUTHZ_CLIENT_ID"),
		AuthzRedirectURL:        v.GetString("AUTHZ_REDIRECT_URL"),
		SessionCookie:           v.GetString("SESSION_COOKIE"),
		SessionTTL:              v.GetDuration("SESSION_TTL"),
		DefaultCountry:          v.GetString("DEFAULT_COUNTRY"),
		LeaseActivationSchedule: v.GetString("LEASE_ACTIVATION_SCHEDULE"),
		SessionPurgeSchedule:    v.GetString("SESSION_PURGE_SCHEDULE"),
	}

	if cfg.DBConnectionLimit <= 0 {
		cfg.DBConnectionLimit = 5
	}
	if cfg.AuthzRedirectURL == "" {
		cfg.AuthzRedirectURL = "http://localhost:" + cfg.Port
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	switch cfg.AuthProvider {
	case AuthProviderAuthorizer:
		if cfg.AuthzURL == "" {
			return nil, fmt.Errorf("AUTHZ_URL is required")
		}
		if cfg.AuthzClientID == "" {
			return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required")
		}
	case AuthProviderLocal:
	default:
		return nil, fmt.Errorf("unsupported AUTH_PROVIDER: %s", cfg.AuthProvider)
	}

	return cfg, nil
}
