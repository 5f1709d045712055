// containers_test.go
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
	"errors"
	"testing"
	"time"

	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *fakeStore {
	return &fakeStore{
		properties: []models.Property{
			{ID: "p1", Name: "12 Smith St", Suburb: "Perth", Status: models.PropertyOccupied},
			{ID: "p2", Name: "4 Jones Rd", Suburb: "Fremantle", Status: models.PropertyVacant},
			{ID: "p3", Name: "Old Farm", Suburb: "York", Status: models.PropertyVacant, IsArchived: true},
		},
	}
}

func TestPropertyListMountLoadsActive(t *testing.T) {
	store := seededStore()
	list := NewPropertyList(store)
	assert.Equal(t, StateLoading, list.Snapshot().State)

	list.Mount(context.Background())

	snap := list.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "p1", snap.Items[0].ID)
	assert.Equal(t, "p2", snap.Items[1].ID)
	assert.Equal(t, []string{"ListProperties"}, store.Calls())
}

func TestListFetchFailureShowsError(t *testing.T) {
	store := &fakeStore{listErr: &types.RemoteError{Kind: types.RemoteQuery, Op: "tenants.list", Message: "relation does not exist", Code: "42P01"}}
	tenants := NewTenantList(store)
	tenants.Mount(context.Background())

	snap := tenants.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "Could not load tenants. Please try again.", snap.Message)
	assert.Empty(t, snap.Items)

	// a write through another container does not touch this one
	leaseStore := &fakeStore{}
	leases := NewLeaseList(leaseStore)
	leases.Mount(context.Background())
	require.NoError(t, leases.Create(context.Background(), forms.LeasePayload{PropertyID: "p1", TenantIDs: []string{"t1"}}))
	assert.Equal(t, StateSuccess, leases.Snapshot().State)

	assert.Equal(t, StateError, tenants.Snapshot().State)
	assert.Equal(t, []string{"ListTenants"}, store.Calls())

	// only a fresh fetch clears it
	store.listErr = nil
	tenants.Reload(context.Background())
	assert.Equal(t, StateSuccess, tenants.Snapshot().State)
}

func TestArchiveConfirmedUpdatesThenRefetches(t *testing.T) {
	store := seededStore()
	list := NewPropertyList(store)
	list.Mount(context.Background())

	var prompt string
	confirm := ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return true, nil
	})

	archived, err := list.Archive(context.Background(), "p1", confirm)
	require.NoError(t, err)
	assert.True(t, archived)
	assert.Equal(t, ArchivePrompt, prompt)

	assert.Equal(t, []string{"ListProperties", "ArchiveProperty:p1", "ListProperties"}, store.Calls())

	snap := list.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "p2", snap.Items[0].ID)
}

func TestArchiveCancelledMakesNoCalls(t *testing.T) {
	store := seededStore()
	list := NewPropertyList(store)
	list.Mount(context.Background())

	archived, err := list.Archive(context.Background(), "p1", Answer(false))
	require.NoError(t, err)
	assert.False(t, archived)
	assert.Equal(t, []string{"ListProperties"}, store.Calls())
}

func TestArchiveFailureSkipsRefetch(t *testing.T) {
	store := seededStore()
	list := NewPropertyList(store)
	list.Mount(context.Background())
	store.writeErr = errors.New("permission denied")

	archived, err := list.Archive(context.Background(), "p1", Answer(true))
	assert.Error(t, err)
	assert.False(t, archived)
	assert.Equal(t, []string{"ListProperties", "ArchiveProperty:p1"}, store.Calls())
	assert.Equal(t, StateSuccess, list.Snapshot().State)
}

func TestCreateRefetches(t *testing.T) {
	store := seededStore()
	list := NewPropertyList(store)
	list.Mount(context.Background())

	err := list.Create(context.Background(), forms.PropertyPayload{Name: "7 Beach Pde", Suburb: "Cottesloe", Status: models.PropertyVacant})
	require.NoError(t, err)
	assert.Equal(t, []string{"ListProperties", "InsertProperty", "ListProperties"}, store.Calls())
	assert.Len(t, list.Snapshot().Items, 3)

	store.writeErr = errors.New("insert failed")
	assert.Error(t, list.Create(context.Background(), forms.PropertyPayload{Name: "x", Suburb: "y"}))
	assert.Len(t, store.Calls(), 4)
}

func TestTenantAndLeaseCreate(t *testing.T) {
	store := &fakeStore{}

	tenants := NewTenantList(store)
	tenants.Mount(context.Background())
	require.NoError(t, tenants.Create(context.Background(), forms.TenantPayload{FirstName: "Alice", LastName: "Nguyen"}))
	require.Len(t, tenants.Snapshot().Items, 1)
	assert.Equal(t, "Alice Nguyen", tenants.Snapshot().Items[0].FullName)

	leases := NewLeaseList(store)
	leases.Mount(context.Background())
	payload := forms.LeasePayload{
		PropertyID:    "p1",
		TenantIDs:     []string{"t1", "t2"},
		StartDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		RentAmount:    450,
		RentFrequency: models.RentWeekly,
	}
	require.NoError(t, leases.Create(context.Background(), payload))
	assert.Equal(t, []string{"t1", "t2"}, store.leaseTIDs)

	snap := leases.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, models.LeasePending, snap.Items[0].Status)
	assert.Equal(t, "2025-03-01", snap.Items[0].StartDate)
}

func TestUnmountDropsInFlightResult(t *testing.T) {
	store := seededStore()
	started := make(chan struct{})
	release := make(chan struct{})
	store.onList = func() {
		close(started)
		<-release
	}

	list := NewPropertyList(store)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		list.Mount(ctx)
		close(done)
	}()

	<-started
	cancel()
	require.Eventually(t, func() bool { return !list.Mounted() }, time.Second, time.Millisecond)

	close(release)
	<-done

	snap := list.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Empty(t, snap.Items)
}

func TestPropertyDetail(t *testing.T) {
	store := seededStore()

	detail := NewPropertyDetail(store, "p2")
	detail.Mount(context.Background())
	snap := detail.Snapshot()
	require.Equal(t, DetailReady, snap.State)
	assert.Equal(t, "4 Jones Rd", snap.Property.Name)
	assert.Equal(t, "Australia", snap.Property.Country)
	assert.Equal(t, ArchiveIdle, snap.Archive)

	missing := NewPropertyDetail(store, "nope")
	missing.Mount(context.Background())
	assert.Equal(t, DetailNotFound, missing.Snapshot().State)

	store.getErr = errors.New("connection refused")
	failing := NewPropertyDetail(store, "p1")
	failing.Mount(context.Background())
	assert.Equal(t, DetailError, failing.Snapshot().State)
	assert.Equal(t, "Could not load this property. Please try again.", failing.Snapshot().Message)
}

func TestPropertyDetailBlankID(t *testing.T) {
	store := seededStore()
	for _, id := range []string{"", "undefined"} {
		detail := NewPropertyDetail(store, id)
		detail.Mount(context.Background())
		assert.Equal(t, DetailNotFound, detail.Snapshot().State)
	}
	assert.Empty(t, store.Calls())
}

func TestPropertyDetailArchive(t *testing.T) {
	store := seededStore()
	detail := NewPropertyDetail(store, "p1")
	detail.Mount(context.Background())

	archived, err := detail.Archive(context.Background(), Answer(false))
	require.NoError(t, err)
	assert.False(t, archived)
	assert.Equal(t, []string{"GetProperty:p1"}, store.Calls())

	archived, err = detail.Archive(context.Background(), Answer(true))
	require.NoError(t, err)
	assert.True(t, archived)
	assert.Equal(t, []string{"GetProperty:p1", "ArchiveProperty:p1", "GetProperty:p1"}, store.Calls())

	snap := detail.Snapshot()
	assert.True(t, snap.Property.IsArchived)
	assert.Equal(t, ArchiveIdle, snap.Archive)

	_, err = detail.Archive(context.Background(), Answer(true))
	assert.ErrorIs(t, err, ErrAlreadyArchived)
	assert.Len(t, store.Calls(), 3)
}

func TestPropertyDetailArchiveRejectsSecondWhileConfirming(t *testing.T) {
	store := seededStore()
	detail := NewPropertyDetail(store, "p1")
	detail.Mount(context.Background())

	var nested error
	confirm := ConfirmFunc(func(ctx context.Context, _ string) (bool, error) {
		assert.Equal(t, ArchiveWorking, detail.Snapshot().Archive)
		_, nested = detail.Archive(ctx, Answer(true))
		return false, nil
	})

	archived, err := detail.Archive(context.Background(), confirm)
	require.NoError(t, err)
	assert.False(t, archived)
	assert.ErrorIs(t, nested, types.ErrSubmitInProgress)
	assert.Equal(t, ArchiveIdle, detail.Snapshot().Archive)
	assert.Equal(t, []string{"GetProperty:p1"}, store.Calls())

	archived, err = detail.Archive(context.Background(), Answer(true))
	require.NoError(t, err)
	assert.True(t, archived)
}

func TestPropertyDetailUpdate(t *testing.T) {
	store := seededStore()
	detail := NewPropertyDetail(store, "p1")
	detail.Mount(context.Background())

	err := detail.Update(context.Background(), forms.PropertyPayload{Name: "12A Smith St", Suburb: "Perth", Status: models.PropertyOccupied})
	require.NoError(t, err)
	assert.Equal(t, "12A Smith St", store.updated["name"])
	assert.Equal(t, "12A Smith St", detail.Snapshot().Property.Name)
	assert.Equal(t, []string{"GetProperty:p1", "UpdateProperty:p1", "GetProperty:p1"}, store.Calls())
}
