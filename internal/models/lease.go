// lease.go
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

	"gorm.io/datatypes"
)

// Lease status values
const (
	LeasePending = "pending"
	LeaseActive  = "active"
	LeaseEnded   = "ended"
)

// Rent frequency values
const (
	RentWeekly      = "weekly"
	RentFortnightly = "fortnightly"
	RentMonthly     = "monthly"
)

// Lease ties one property to a rent agreement. Tenants attach through LeaseTenant.
type Lease struct {
	ID            string         `gorm:"type:char(36);primaryKey"`
	PropertyID    string         `gorm:"type:char(36);not null;index"`
	StartDate     datatypes.Date `gorm:"not null"`
	RentAmount    Money          `gorm:"not null"`
	RentFrequency string         `gorm:"size:16;not null;default:'weekly'"`
	BondAmount    NullMoney
	Status        string `gorm:"size:16;not null;default:'pending';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Property      *Property     `gorm:"foreignKey:PropertyID"`
	LeaseTenants  []LeaseTenant `gorm:"foreignKey:LeaseID"`
}

// LeaseTenant is the join row linking one lease to one tenant
type LeaseTenant struct {
	LeaseID   string `gorm:"type:char(36);primaryKey"`
	TenantID  string `gorm:"type:char(36);primaryKey;index"`
	CreatedAt time.Time
	Lease     *Lease  `gorm:"foreignKey:LeaseID"`
	Tenant    *Tenant `gorm:"foreignKey:TenantID"`
}

// TableName overrides the table name for Lease
func (Lease) TableName() string {
	return "leases"
}

// TableName overrides the table name for LeaseTenant
func (LeaseTenant) TableName() string {
	return "lease_tenants"
}
