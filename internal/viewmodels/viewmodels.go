// viewmodels.go
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

// Package viewmodels holds the flat, fully defaulted records that views render.
package viewmodels

import "time"

// Property is a flattened properties row
type Property struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Street     string    `json:"street"`
	Suburb     string    `json:"suburb"`
	State      string    `json:"state"`
	Postcode   string    `json:"postcode"`
	Country    string    `json:"country"`
	Status     string    `json:"status"`
	Bedrooms   *int      `json:"bedrooms"`
	Bathrooms  *int      `json:"bathrooms"`
	CarBays    *int      `json:"carBays"`
	Notes      string    `json:"notes"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Lease is a lease row joined to its property and tenants
type Lease struct {
	ID            string   `json:"id"`
	PropertyID    string   `json:"propertyId"`
	PropertyName  string   `json:"propertyName"`
	StartDate     string   `json:"startDate"`
	RentAmount    float64  `json:"rentAmount"`
	RentFrequency string   `json:"rentFrequency"`
	BondAmount    *float64 `json:"bondAmount"`
	Status        string   `json:"status"`
	TenantNames   []string `json:"tenantNames"`
}

// TenantListItem is a tenant row with its derived active lease count
type TenantListItem struct {
	ID                string `json:"id"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	ActiveLeasesCount int    `json:"activeLeasesCount"`
}

// Option is one choice offered by a select field
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
