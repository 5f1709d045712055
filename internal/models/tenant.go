// tenant.go
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

package models

import (
	"time"
)

// Tenant is a person who can be linked to one or more leases
type Tenant struct {
	ID           string  `gorm:"type:char(36);primaryKey"`
	FirstName    string  `gorm:"size:120;not null"`
	LastName     string  `gorm:"size:120;not null"`
	Email        *string `gorm:"size:255"`
	Phone        *string `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LeaseTenants []LeaseTenant `gorm:"foreignKey:TenantID"`
}

// TableName overrides the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
