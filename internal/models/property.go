// property.go
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

// Property status values
const (
	PropertyOccupied = "occupied"
	PropertyVacant   = "vacant"
)

// Property is a rentable dwelling. Archived properties are hidden from active
// listings but never deleted.
type Property struct {
	ID         string  `gorm:"type:char(36);primaryKey"`
	Name       string  `gorm:"size:255;not null"`
	Street     *string `gorm:"size:255"`
	Suburb     string  `gorm:"size:255;not null"`
	State      *string `gorm:"size:64"`
	Postcode   *string `gorm:"size:16"`
	Country    *string `gorm:"size:64"`
	Status     string  `gorm:"size:16;not null;default:'vacant'"`
	Bedrooms   *int
	Bathrooms  *int
	CarBays    *int
	Notes      *string `gorm:"size:4000"`
	IsArchived bool    `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Leases     []Lease `gorm:"foreignKey:PropertyID"`
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}
