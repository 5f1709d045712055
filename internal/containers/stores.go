// stores.go
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

package containers

import (
	"context"

	"github.com/localnerve/propiq/internal/models"
)

// PropertyStore is the part of the data service the property containers use
type PropertyStore interface {
	ListProperties(ctx context.Context, activeOnly bool) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	InsertProperty(ctx context.Context, property *models.Property) error
	UpdateProperty(ctx context.Context, id string, fields map[string]interface{}) error
	ArchiveProperty(ctx context.Context, id string) error
}

// LeaseStore is the part of the data service the lease container uses
type LeaseStore interface {
	ListLeases(ctx context.Context) ([]models.Lease, error)
	InsertLease(ctx context.Context, lease *models.Lease, tenantIDs []string) error
}

// TenantStore is the part of the data service the tenant container uses
type TenantStore interface {
	ListTenants(ctx context.Context) ([]models.Tenant, error)
	InsertTenant(ctx context.Context, tenant *models.Tenant) error
}
