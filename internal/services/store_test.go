// store_test.go
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
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/testutil"
	"github.com/localnerve/propiq/internal/types"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestListPropertiesExcludesArchived(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewStore(db)
	ctx := context.Background()

	testutil.CreateProperty(t, db, "12 Smith St", "Perth", models.PropertyOccupied, false)
	testutil.CreateProperty(t, db, "4 Jones Rd", "Fremantle", models.PropertyVacant, false)
	testutil.CreateProperty(t, db, "Old Farm", "York", models.PropertyVacant, true)

	active, err := store.ListProperties(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	for _, p := range active {
		assert.False(t, p.IsArchived)
	}

	all, err := store.ListProperties(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetProperty(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewStore(db)
	ctx := context.Background()

	created := testutil.CreateProperty(t, db, "12 Smith St", "Perth", models.PropertyOccupied, false)

	found, err := store.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 Smith St", found.Name)

	_, err = store.GetProperty(ctx, "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestInsertUpdateArchiveProperty(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewStore(db)
	ctx := context.Background()

	country := "Australia"
	property := &models.Property{Name: "7 Beach Pde", Suburb: "Cottesloe", Country: &country, Status: models.PropertyVacant}
	require.NoError(t, store.InsertProperty(ctx, property))
	require.NotEmpty(t, property.ID)

	require.NoError(t, store.UpdateProperty(ctx, property.ID, map[string]interface{}{"status": models.PropertyOccupied}))
	updated, err := store.GetProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyOccupied, updated.Status)

	require.NoError(t, store.ArchiveProperty(ctx, property.ID))
	archived, err := store.GetProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	active, err := store.ListProperties(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, store.ArchiveProperty(ctx, "missing"), types.ErrNotFound)
}

func TestInsertLeaseLinksTenants(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewStore(db)
	ctx := context.Background()

	property := testutil.CreateProperty(t, db, "12 Smith St", "Perth", models.PropertyOccupied, false)
	alice := testutil.CreateTenant(t, db, "Alice", "Nguyen")
	bob := testutil.CreateTenant(t, db, "Bob", "Lee")

	lease := &models.Lease{
		PropertyID:    property.ID,
		StartDate:     datatypes.Date(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		RentAmount:    models.NewMoney(520.5),
		RentFrequency: models.RentFortnightly,
		Status:        models.LeaseActive,
	}
	require.NoError(t, store.InsertLease(ctx, lease, []string{alice.ID, bob.ID}))

	leases, err := store.ListLeases(ctx)
	require.NoError(t, err)
	require.Len(t, leases, 1)

	got := leases[0]
	require.NotNil(t, got.Property)
	assert.Equal(t, "12 Smith St", got.Property.Name)
	assert.Len(t, got.LeaseTenants, 2)
	assert.Equal(t, "520.5", got.RentAmount.String())
	assert.False(t, got.BondAmount.Valid)

	tenants, err := store.ListTenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	for _, tenant := range tenants {
		require.Len(t, tenant.LeaseTenants, 1)
		require.NotNil(t, tenant.LeaseTenants[0].Lease)
		assert.Equal(t, models.LeaseActive, tenant.LeaseTenants[0].Lease.Status)
	}
}

func TestInsertTenant(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewStore(db)

	email := "sam@example.com"
	tenant := &models.Tenant{FirstName: "Sam", LastName: "Park", Email: &email}
	require.NoError(t, store.InsertTenant(context.Background(), tenant))
	assert.NotEmpty(t, tenant.ID)
}

func TestActivateDueLeases(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewStore(db)
	ctx := context.Background()

	property := testutil.CreateProperty(t, db, "12 Smith St", "Perth", models.PropertyOccupied, false)
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	due := testutil.CreateLease(t, db, property.ID, models.LeasePending, now.AddDate(0, 0, -1))
	future := testutil.CreateLease(t, db, property.ID, models.LeasePending, now.AddDate(0, 1, 0))
	ended := testutil.CreateLease(t, db, property.ID, models.LeaseEnded, now.AddDate(-1, 0, 0))

	n, err := store.ActivateDueLeases(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	statusOf := func(id string) string {
		var lease models.Lease
		require.NoError(t, db.First(&lease, "id = ?", id).Error)
		return lease.Status
	}
	assert.Equal(t, models.LeaseActive, statusOf(due.ID))
	assert.Equal(t, models.LeasePending, statusOf(future.ID))
	assert.Equal(t, models.LeaseEnded, statusOf(ended.ID))
}

func TestRemoteErrorExtraction(t *testing.T) {
	pgErr := &pgconn.PgError{Message: "duplicate key", Code: "23505", Detail: "Key (id)=(1) exists", Hint: "use another id"}
	err := mutationError("properties.insert", pgErr)

	var re *types.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, types.RemoteMutation, re.Kind)
	assert.Equal(t, "duplicate key", re.Message)
	assert.Equal(t, "23505", re.Code)
	assert.Equal(t, "Key (id)=(1) exists", re.Details)
	assert.Equal(t, "use another id", re.Hint)
	assert.ErrorIs(t, err, pgErr)

	myErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	require.True(t, errors.As(queryError("tenants.list", myErr), &re))
	assert.Equal(t, types.RemoteQuery, re.Kind)
	assert.Equal(t, "1062", re.Code)
	assert.Equal(t, "Duplicate entry", re.Message)

	msErr := mssql.Error{Number: 208, Message: "Invalid object name", ProcName: "sp_list", LineNo: 3}
	require.True(t, errors.As(queryError("leases.list", msErr), &re))
	assert.Equal(t, "208", re.Code)
	assert.Equal(t, "sp_list line 3", re.Details)

	assert.NoError(t, queryError("noop", nil))
}
