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

package mappers

import (
	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// UnnamedTenant stands in for a tenant with neither name recorded
const UnnamedTenant = "Unnamed tenant"

// Tenant maps a tenants row joined to lease_tenants.leases
func Tenant(row models.Tenant) viewmodels.TenantListItem {
	fullName := joinName(row.FirstName, row.LastName)
	if fullName == "" {
		fullName = UnnamedTenant
	}

	active := 0
	for _, link := range row.LeaseTenants {
		if link.Lease != nil && link.Lease.Status == models.LeaseActive {
			active++
		}
	}

	return viewmodels.TenantListItem{
		ID:                row.ID,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		FullName:          fullName,
		Email:             str(row.Email),
		Phone:             str(row.Phone),
		ActiveLeasesCount: active,
	}
}

// Tenants maps a tenants result set, never returning nil
func Tenants(rows []models.Tenant) []viewmodels.TenantListItem {
	return mapAll(rows, Tenant)
}

// TenantOptions lists tenants as lease form choices
func TenantOptions(tenants []viewmodels.TenantListItem) []viewmodels.Option {
	options := make([]viewmodels.Option, 0, len(tenants))
	for _, t := range tenants {
		options = append(options, viewmodels.Option{ID: t.ID, Label: t.FullName})
	}
	return options
}
