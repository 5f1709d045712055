// fake_test.go
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
	"sync"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/types"
)

// fakeStore records every data service call in order
type fakeStore struct {
	mu    sync.Mutex
	calls []string

	properties []models.Property
	leases     []models.Lease
	tenants    []models.Tenant

	listErr   error
	getErr    error
	writeErr  error
	onList    func()
	inserted  []*models.Property
	updated   map[string]interface{}
	leaseTIDs []string
}

func (f *fakeStore) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeStore) ListProperties(_ context.Context, activeOnly bool) ([]models.Property, error) {
	f.record("ListProperties")
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	var rows []models.Property
	for _, p := range f.properties {
		if activeOnly && p.IsArchived {
			continue
		}
		rows = append(rows, p)
	}
	return rows, nil
}

func (f *fakeStore) GetProperty(_ context.Context, id string) (*models.Property, error) {
	f.record("GetProperty:" + id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.properties {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, types.ErrNotFound
}

func (f *fakeStore) InsertProperty(_ context.Context, property *models.Property) error {
	f.record("InsertProperty")
	if f.writeErr != nil {
		return f.writeErr
	}
	property.ID = "new-property"
	f.inserted = append(f.inserted, property)
	f.properties = append(f.properties, *property)
	return nil
}

func (f *fakeStore) UpdateProperty(_ context.Context, id string, fields map[string]interface{}) error {
	f.record("UpdateProperty:" + id)
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updated = fields
	for i := range f.properties {
		if f.properties[i].ID == id {
			if name, ok := fields["name"].(string); ok {
				f.properties[i].Name = name
			}
		}
	}
	return nil
}

func (f *fakeStore) ArchiveProperty(_ context.Context, id string) error {
	f.record("ArchiveProperty:" + id)
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.properties {
		if f.properties[i].ID == id {
			f.properties[i].IsArchived = true
		}
	}
	return nil
}

func (f *fakeStore) ListLeases(context.Context) ([]models.Lease, error) {
	f.record("ListLeases")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.leases, nil
}

func (f *fakeStore) InsertLease(_ context.Context, lease *models.Lease, tenantIDs []string) error {
	f.record("InsertLease")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.leaseTIDs = tenantIDs
	f.leases = append(f.leases, *lease)
	return nil
}

func (f *fakeStore) ListTenants(context.Context) ([]models.Tenant, error) {
	f.record("ListTenants")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tenants, nil
}

func (f *fakeStore) InsertTenant(_ context.Context, tenant *models.Tenant) error {
	f.record("InsertTenant")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.tenants = append(f.tenants, *tenant)
	return nil
}
