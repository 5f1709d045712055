// leases.go
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

// LeaseList lists every lease with its property and tenant names
type LeaseList struct {
	*List[viewmodels.Lease]
	store LeaseStore
}

// NewLeaseList builds an unmounted lease list container
func NewLeaseList(store LeaseStore) *LeaseList {
	fetch := func(ctx context.Context) ([]viewmodels.Lease, error) {
		rows, err := store.ListLeases(ctx)
		if err != nil {
			return nil, err
		}
		return mappers.Leases(rows), nil
	}

	return &LeaseList{
		List:  newList("leases", "Could not load leases. Please try again.", fetch),
		store: store,
	}
}

// Create inserts a lease with its tenant links then re-fetches the list
func (c *LeaseList) Create(ctx context.Context, payload forms.LeasePayload) error {
	err := c.store.InsertLease(ctx, payload.Model(), payload.TenantIDs)
	metrics.Mutations.WithLabelValues("lease", "insert", metrics.Outcome(err)).Inc()
	if err != nil {
		log.Printf("Error inserting lease: %v", err)
		return err
	}

	c.Reload(ctx)
	return nil
}
