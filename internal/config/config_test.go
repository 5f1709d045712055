// config_test.go
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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", "propiq")
	t.Setenv("AUTH_PROVIDER", "local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, "propiq_session", cfg.SessionCookie)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "Australia", cfg.DefaultCountry)
	assert.Empty(t, cfg.LeaseActivationSchedule)
	assert.Equal(t, "@hourly", cfg.SessionPurgeSchedule)
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("AUTH_PROVIDER", "local")

	_, err := Load()
	assert.EqualError(t, err, "DB_DATABASE is required")
}

func TestLoadAuthorizerRequiresURLAndClient(t *testing.T) {
	t.Setenv("DB_DATABASE", "propiq")
	t.Setenv("AUTH_PROVIDER", "authorizer")
	t.Setenv("AUTHZ_URL", "")

	_, err := Load()
	assert.EqualError(t, err, "AUTHZ_URL is required")

	t.Setenv("AUTHZ_URL", "http://authorizer:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "")
	_, err = Load()
	assert.EqualError(t, err, "AUTHZ_CLIENT_ID is required")

	t.Setenv("AUTHZ_CLIENT_ID", "client")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://authorizer:8080", cfg.AuthzURL)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("DB_DATABASE", "propiq")
	t.Setenv("AUTH_PROVIDER", "ldap")

	_, err := Load()
	assert.EqualError(t, err, "unsupported AUTH_PROVIDER: ldap")
}

func TestLoadConfigFileUnderEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "propiq.env")
	content := "DB_DATABASE=fromfile\nDB_TYPE=sqlite\nAUTH_PROVIDER=local\nPORT=4000\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("PROPIQ_CONFIG", file)
	t.Setenv("PORT", "5000")
	for _, key := range []string{"DB_DATABASE", "DB_TYPE", "AUTH_PROVIDER"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.DBDatabase)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "5000", cfg.Port)
}
