// tenants.go
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

package services

import (
	"context"

	"github.com/localnerve/propiq/internal/models"
)

// ListTenants selects every tenant with the status of each linked lease
func (s *Store) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	var rows []models.Tenant

	err := s.read(ctx, "tenants.list").
		Preload("LeaseTenants.Lease").
		Find(&rows).Error
	if err != nil {
		return nil, queryError("tenants.list", err)
	}
	return rows, nil
}

// InsertTenant creates a tenant
func (s *Store) InsertTenant(ctx context.Context, tenant *models.Tenant) error {
	return mutationError("tenants.insert", s.write(ctx).Omit("LeaseTenants").Create(tenant).Error)
}
