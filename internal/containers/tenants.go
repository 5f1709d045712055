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

package containers

import (
	"context"
	"log"

	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/mappers"
	"github.com/localnerve/propiq/internal/metrics"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// TenantList lists every tenant with an active lease count
type TenantList struct {
	*List[viewmodels.TenantListItem]
	store TenantStore
}

// NewTenantList builds an unmounted tenant list container
func NewTenantList(store TenantStore) *TenantList {
	fetch := func(ctx context.Context) ([]viewmodels.TenantListItem, error) {
		rows, err := store.ListTenants(ctx)
		if err != nil {
			return nil, err
		}
		return mappers.Tenants(rows), nil
	}

	return &TenantList{
		List:  newList("tenants", "Could not load tenants. Please try again.", fetch),
		store: store,
	}
}

// Create inserts a tenant then re-fetches the list
func (c *TenantList) Create(ctx context.Context, payload forms.TenantPayload) error {
	err := c.store.InsertTenant(ctx, payload.Model())
	metrics.Mutations.WithLabelValues("tenant", "insert", metrics.Outcome(err)).Inc()
	if err != nil {
		log.Printf("Error inserting tenant: %v", err)
		return err
	}

	c.Reload(ctx)
	return nil
}
