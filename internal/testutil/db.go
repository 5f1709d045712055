// db.go
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

package testutil

import (
	"testing"
	"time"

	glebarez "github.com/glebarez/sqlite"
	"github.com/localnerve/propiq/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database for one test
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(glebarez.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	// Every pooled connection to :memory: would be a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateProperty inserts a property row
func CreateProperty(t *testing.T, db *gorm.DB, name, suburb, status string, archived bool) models.Property {
	t.Helper()
	property := models.Property{Name: name, Suburb: suburb, Status: status, IsArchived: archived}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}
	return property
}

// CreateTenant inserts a tenant row
func CreateTenant(t *testing.T, db *gorm.DB, first, last string) models.Tenant {
	t.Helper()
	tenant := models.Tenant{FirstName: first, LastName: last}
	if err := db.Create(&tenant).Error; err != nil {
		t.Fatalf("Failed to create tenant: %v", err)
	}
	return tenant
}

// CreateLease inserts a lease row linked to the given tenants
func CreateLease(t *testing.T, db *gorm.DB, propertyID, status string, start time.Time, tenantIDs ...string) models.Lease {
	t.Helper()
	lease := models.Lease{
		PropertyID:    propertyID,
		StartDate:     datatypes.Date(start),
		RentAmount:    models.NewMoney(450),
		RentFrequency: models.RentWeekly,
		Status:        status,
	}
	if err := db.Create(&lease).Error; err != nil {
		t.Fatalf("Failed to create lease: %v", err)
	}
	for _, tenantID := range tenantIDs {
		link := models.LeaseTenant{LeaseID: lease.ID, TenantID: tenantID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("Failed to link tenant: %v", err)
		}
	}
	return lease
}
