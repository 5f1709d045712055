// pages.go
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
	"fmt"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/viewmodels"
)

const (
	noProperties = "You don't have any properties yet. Add your first property to get started."
	noLeases     = "No leases recorded yet. Once you add tenants and a lease for a property, they will show here."
	noTenants    = "No tenants captured yet. Once you add tenants and link them to leases, they will show here."
)

// PropertyRow is one rendered property
type PropertyRow struct {
	viewmodels.Property
	StatusLabel string   `json:"statusLabel"`
	Actions     []Action `json:"actions,omitempty"`
}

// PropertyListView is the rendered property list
type PropertyListView struct {
	State   containers.LoadState `json:"state"`
	Message string               `json:"message,omitempty"`
	Empty   string               `json:"empty,omitempty"`
	Summary *Summary             `json:"summary,omitempty"`
	Line    string               `json:"summaryLine,omitempty"`
	Filters []FilterOption       `json:"filters,omitempty"`
	Items   []PropertyRow        `json:"items"`
}

// RenderPropertyList renders a property list snapshot. The summary counts the
// whole collection, the rows show only the filtered subset.
func RenderPropertyList(snap containers.Snapshot[viewmodels.Property], f Filter, caps Capabilities) PropertyListView {
	view := PropertyListView{State: snap.State, Message: snap.Message, Items: []PropertyRow{}}
	if snap.State != containers.StateSuccess {
		return view
	}
	if len(snap.Items) == 0 {
		view.Empty = noProperties
		return view
	}

	summary := Summarize(snap.Items)
	view.Summary = &summary
	view.Line = summary.Line()
	view.Filters = FilterOptions(f)

	for _, p := range FilterProperties(snap.Items, f) {
		row := PropertyRow{Property: p, StatusLabel: PropertyStatusLabel(p.Status)}
		if caps.Any() {
			row.Actions = caps.Actions(p.ID)
		}
		view.Items = append(view.Items, row)
	}
	return view
}

// Lines renders the property list as text
func (v PropertyListView) Lines() []string {
	switch {
	case v.State != containers.StateSuccess:
		return []string{v.Message}
	case v.Empty != "":
		return []string{v.Empty}
	}
	lines := []string{v.Line}
	for _, row := range v.Items {
		lines = append(lines, fmt.Sprintf("%s  %s, %s  [%s]", row.ID, row.Name, row.Suburb, row.StatusLabel))
	}
	return lines
}

// LeaseRow is one rendered lease
type LeaseRow struct {
	viewmodels.Lease
	Tenants     string `json:"tenants"`
	Start       string `json:"start"`
	Rent        string `json:"rent"`
	StatusLabel string `json:"statusLabel"`
}

// LeaseListView is the rendered lease list
type LeaseListView struct {
	State   containers.LoadState `json:"state"`
	Message string               `json:"message,omitempty"`
	Empty   string               `json:"empty,omitempty"`
	Items   []LeaseRow           `json:"items"`
}

// FilterLeases keeps the leases of one property, or all when propertyID is blank
func FilterLeases(leases []viewmodels.Lease, propertyID string) []viewmodels.Lease {
	if propertyID == "" {
		return leases
	}
	out := make([]viewmodels.Lease, 0, len(leases))
	for _, l := range leases {
		if l.PropertyID == propertyID {
			out = append(out, l)
		}
	}
	return out
}

// RenderLeaseList renders a lease list snapshot
func RenderLeaseList(snap containers.Snapshot[viewmodels.Lease], propertyID string) LeaseListView {
	view := LeaseListView{State: snap.State, Message: snap.Message, Items: []LeaseRow{}}
	if snap.State != containers.StateSuccess {
		return view
	}

	leases := FilterLeases(snap.Items, propertyID)
	if len(leases) == 0 {
		view.Empty = noLeases
		return view
	}

	for _, l := range leases {
		view.Items = append(view.Items, LeaseRow{
			Lease:       l,
			Tenants:     TenantNamesLine(l.TenantNames),
			Start:       FormatDate(l.StartDate),
			Rent:        FormatRent(l.RentAmount, l.RentFrequency),
			StatusLabel: LeaseStatusLabel(l.Status),
		})
	}
	return view
}

// Lines renders the lease list as text
func (v LeaseListView) Lines() []string {
	switch {
	case v.State != containers.StateSuccess:
		return []string{v.Message}
	case v.Empty != "":
		return []string{v.Empty}
	}
	lines := make([]string, 0, len(v.Items))
	for _, row := range v.Items {
		lines = append(lines, fmt.Sprintf("%s  %s  (%s)  Start: %s  %s  [%s]",
			row.ID, row.PropertyName, row.Tenants, row.Start, row.Rent, row.StatusLabel))
	}
	return lines
}

// TenantRow is one rendered tenant
type TenantRow struct {
	viewmodels.TenantListItem
	EmailLine   string `json:"emailLine"`
	ActiveLabel string `json:"activeLabel"`
}

// TenantListView is the rendered tenant list
type TenantListView struct {
	State   containers.LoadState `json:"state"`
	Message string               `json:"message,omitempty"`
	Empty   string               `json:"empty,omitempty"`
	Items   []TenantRow          `json:"items"`
}

// RenderTenantList renders a tenant list snapshot
func RenderTenantList(snap containers.Snapshot[viewmodels.TenantListItem]) TenantListView {
	view := TenantListView{State: snap.State, Message: snap.Message, Items: []TenantRow{}}
	if snap.State != containers.StateSuccess {
		return view
	}
	if len(snap.Items) == 0 {
		view.Empty = noTenants
		return view
	}

	for _, t := range snap.Items {
		view.Items = append(view.Items, TenantRow{
			TenantListItem: t,
			EmailLine:      EmailLine(t.Email),
			ActiveLabel:    ActiveLeasesLabel(t.ActiveLeasesCount),
		})
	}
	return view
}

// Lines renders the tenant list as text
func (v TenantListView) Lines() []string {
	switch {
	case v.State != containers.StateSuccess:
		return []string{v.Message}
	case v.Empty != "":
		return []string{v.Empty}
	}
	lines := make([]string, 0, len(v.Items))
	for _, row := range v.Items {
		line := fmt.Sprintf("%s  %s  %s", row.ID, row.FullName, row.EmailLine)
		if row.Phone != "" {
			line += "  " + row.Phone
		}
		lines = append(lines, line+"  ["+row.ActiveLabel+"]")
	}
	return lines
}

// PropertyDetailView is the rendered property detail
type PropertyDetailView struct {
	containers.DetailSnapshot
	Address     string   `json:"address,omitempty"`
	StatusLabel string   `json:"statusLabel,omitempty"`
	Created     string   `json:"created,omitempty"`
	Updated     string   `json:"updated,omitempty"`
	Actions     []Action `json:"actions,omitempty"`
}

// RenderPropertyDetail renders a detail snapshot. Archive is offered only
// while the property is not archived.
func RenderPropertyDetail(snap containers.DetailSnapshot, caps Capabilities) PropertyDetailView {
	view := PropertyDetailView{DetailSnapshot: snap}
	if snap.State != containers.DetailReady || snap.Property == nil {
		return view
	}

	p := snap.Property
	view.Address = Address(*p)
	view.StatusLabel = PropertyStatusLabel(p.Status)
	view.Created = formatTimestamp(p.CreatedAt)
	view.Updated = formatTimestamp(p.UpdatedAt)

	if p.IsArchived || snap.Archive == containers.ArchiveWorking {
		caps.Archive = false
	}
	view.Actions = caps.Actions(p.ID)
	return view
}
