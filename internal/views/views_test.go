// views_test.go
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

package views

import (
	"testing"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/viewmodels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func properties() []viewmodels.Property {
	return []viewmodels.Property{
		{ID: "a", Name: "A", Suburb: "Perth", Status: "occupied"},
		{ID: "b", Name: "B", Suburb: "Subiaco", Status: "vacant"},
		{ID: "c", Name: "C", Suburb: "Leederville", Status: "occupied"},
	}
}

func TestSummaryLine(t *testing.T) {
	s := Summarize(properties())
	assert.Equal(t, Summary{Total: 3, Occupied: 2, Vacant: 1}, s)
	assert.Equal(t, "3 properties total · 2 occupied · 1 vacant", s.Line())

	one := Summarize(properties()[:1])
	assert.Equal(t, "1 property total · 1 occupied · 0 vacant", one.Line())
}

func TestFilterKeepsOrder(t *testing.T) {
	got := FilterProperties(properties(), FilterOccupied)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	assert.Len(t, FilterProperties(properties(), FilterAll), 3)
	assert.Len(t, FilterProperties(nil, FilterVacant), 0)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter(" Vacant ")
	require.NoError(t, err)
	assert.Equal(t, FilterVacant, f)

	_, err = ParseFilter("archived")
	assert.Error(t, err)
}

func TestRenderPropertyListCountsWholeCollection(t *testing.T) {
	snap := containers.Snapshot[viewmodels.Property]{State: containers.StateSuccess, Items: properties()}
	view := RenderPropertyList(snap, FilterVacant, ReadOnly)

	assert.Equal(t, "3 properties total · 2 occupied · 1 vacant", view.Line)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "b", view.Items[0].ID)
	assert.Equal(t, "Vacant", view.Items[0].StatusLabel)
	assert.Empty(t, view.Items[0].Actions)
	assert.True(t, view.Filters[2].Active)
}

func TestRenderPropertyListActions(t *testing.T) {
	snap := containers.Snapshot[viewmodels.Property]{State: containers.StateSuccess, Items: properties()[:1]}
	view := RenderPropertyList(snap, FilterAll, FullAccess)

	require.Len(t, view.Items[0].Actions, 3)
	assert.Equal(t, "/api/properties/a/edit", view.Items[0].Actions[0].Href)
	assert.Equal(t, "/api/leases?property=a", view.Items[0].Actions[1].Href)
	assert.Equal(t, "POST", view.Items[0].Actions[2].Method)

	partial := RenderPropertyList(snap, FilterAll, Capabilities{Archive: true})
	require.Len(t, partial.Items[0].Actions, 1)
	assert.Equal(t, "archive", partial.Items[0].Actions[0].Name)
}

func TestRenderPropertyListStates(t *testing.T) {
	loading := RenderPropertyList(containers.Snapshot[viewmodels.Property]{State: containers.StateLoading}, FilterAll, ReadOnly)
	assert.Empty(t, loading.Items)
	assert.Empty(t, loading.Empty)

	failed := RenderPropertyList(containers.Snapshot[viewmodels.Property]{
		State:   containers.StateError,
		Message: "Could not load properties. Please try again.",
	}, FilterAll, ReadOnly)
	assert.Equal(t, []string{"Could not load properties. Please try again."}, failed.Lines())

	empty := RenderPropertyList(containers.Snapshot[viewmodels.Property]{State: containers.StateSuccess}, FilterAll, ReadOnly)
	assert.Equal(t, noProperties, empty.Empty)
	assert.Nil(t, empty.Summary)
}

func TestRenderLeaseList(t *testing.T) {
	snap := containers.Snapshot[viewmodels.Lease]{State: containers.StateSuccess, Items: []viewmodels.Lease{
		{ID: "l1", PropertyID: "a", PropertyName: "A", StartDate: "2024-03-01", RentAmount: 450, RentFrequency: "weekly", Status: "active"},
		{ID: "l2", PropertyID: "b", PropertyName: "B", StartDate: "2024-04-01", RentAmount: 1900.5, RentFrequency: "monthly", Status: "pending", TenantNames: []string{"Ann Lee", "Bo Chan"}},
	}}

	view := RenderLeaseList(snap, "")
	require.Len(t, view.Items, 2)
	assert.Equal(t, "No tenants linked", view.Items[0].Tenants)
	assert.Equal(t, "Mar 1, 2024", view.Items[0].Start)
	assert.Equal(t, "$450.00 / weekly", view.Items[0].Rent)
	assert.Equal(t, "Active", view.Items[0].StatusLabel)
	assert.Equal(t, "Ann Lee, Bo Chan", view.Items[1].Tenants)
	assert.Equal(t, "Pending", view.Items[1].StatusLabel)

	one := RenderLeaseList(snap, "b")
	require.Len(t, one.Items, 1)
	assert.Equal(t, "l2", one.Items[0].ID)

	none := RenderLeaseList(snap, "zzz")
	assert.Equal(t, noLeases, none.Empty)
}

func TestRenderTenantList(t *testing.T) {
	snap := containers.Snapshot[viewmodels.TenantListItem]{State: containers.StateSuccess, Items: []viewmodels.TenantListItem{
		{ID: "t1", FullName: "Ann Lee", ActiveLeasesCount: 1},
		{ID: "t2", FullName: "Bo Chan", Email: "bo@example.com", Phone: "0400 000 000", ActiveLeasesCount: 3},
		{ID: "t3", FullName: "Cy Park"},
	}}

	view := RenderTenantList(snap)
	require.Len(t, view.Items, 3)
	assert.Equal(t, "No email recorded", view.Items[0].EmailLine)
	assert.Equal(t, "1 active lease", view.Items[0].ActiveLabel)
	assert.Equal(t, "3 active leases", view.Items[1].ActiveLabel)
	assert.Equal(t, "No active leases", view.Items[2].ActiveLabel)

	lines := view.Lines()
	assert.Equal(t, "t2  Bo Chan  bo@example.com  0400 000 000  [3 active leases]", lines[1])

	empty := RenderTenantList(containers.Snapshot[viewmodels.TenantListItem]{State: containers.StateSuccess})
	assert.Equal(t, []string{noTenants}, empty.Lines())
}

func TestRenderPropertyDetail(t *testing.T) {
	p := viewmodels.Property{ID: "a", Street: "1 High St", Suburb: "Perth", State: "WA", Country: "Australia", Status: "vacant"}
	view := RenderPropertyDetail(containers.DetailSnapshot{State: containers.DetailReady, Archive: containers.ArchiveIdle, Property: &p}, FullAccess)

	assert.Equal(t, "1 High St, Perth, WA, Australia", view.Address)
	assert.Equal(t, "-", view.Created)
	assert.Len(t, view.Actions, 3)

	p.IsArchived = true
	archived := RenderPropertyDetail(containers.DetailSnapshot{State: containers.DetailReady, Property: &p}, FullAccess)
	assert.Len(t, archived.Actions, 2)

	missing := RenderPropertyDetail(containers.DetailSnapshot{State: containers.DetailNotFound}, FullAccess)
	assert.Empty(t, missing.Actions)
}

func TestFormatDateFallsBack(t *testing.T) {
	assert.Equal(t, "someday", FormatDate("someday"))
	assert.Equal(t, "", FormatDate(""))
}

func TestNav(t *testing.T) {
	items := Nav("/leases")
	require.Len(t, items, 4)
	for _, item := range items {
		assert.Equal(t, item.Href == "/leases", item.Active)
	}
}
