// connection_test.go
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

package database

import (
	"testing"

	"github.com/localnerve/propiq/internal/config"
	"github.com/localnerve/propiq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorSelection(t *testing.T) {
	cases := map[string]string{
		"mysql":     "mysql",
		"mariadb":   "mysql",
		"postgres":  "postgres",
		"sqlserver": "sqlserver",
		"sqlite":    "sqlite",
		"sqlite3":   "sqlite",
	}
	for dbType, want := range cases {
		d, err := Dialector(&config.Config{DBType: dbType, DBDatabase: "propiq"})
		require.NoError(t, err, dbType)
		assert.Equal(t, want, d.Name(), dbType)
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.EqualError(t, err, "unsupported database type: oracle")
}

func TestConnectSQLiteMemoryAndMigrate(t *testing.T) {
	db, err := Connect(&config.Config{DBType: "sqlite", DBDatabase: ":memory:", DBConnectionLimit: 5})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"properties", "tenants", "leases", "lease_tenants", "accounts", "sessions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	property := models.Property{Name: "36 Chatsworth Drive", Suburb: "Carramar", Status: models.PropertyOccupied}
	require.NoError(t, db.Create(&property).Error)
	assert.Len(t, property.ID, 36)
}
