// format.go
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
	"strings"
	"time"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/viewmodels"
)

const (
	noTenantsLinked = "No tenants linked"
	noEmailRecorded = "No email recorded"
	noActiveLeases  = "No active leases"
)

// PropertyStatusLabel labels a property status
func PropertyStatusLabel(status string) string {
	if status == models.PropertyOccupied {
		return "Occupied"
	}
	return "Vacant"
}

// LeaseStatusLabel labels a lease status
func LeaseStatusLabel(status string) string {
	switch status {
	case models.LeaseActive:
		return "Active"
	case models.LeasePending:
		return "Pending"
	}
	return "Ended"
}

// FormatRent renders an amount and frequency as $450.00 / weekly
func FormatRent(amount float64, frequency string) string {
	return fmt.Sprintf("$%.2f / %s", amount, frequency)
}

// FormatDate renders a yyyy-mm-dd date as Jan 2, 2006. Anything else is returned as is.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.Format("Jan 2, 2006")
		}
	}
	return raw
}

// TenantNamesLine lists a lease's tenants
func TenantNamesLine(names []string) string {
	if len(names) == 0 {
		return noTenantsLinked
	}
	return strings.Join(names, ", ")
}

// EmailLine shows a tenant email or the fallback
func EmailLine(email string) string {
	if email == "" {
		return noEmailRecorded
	}
	return email
}

// ActiveLeasesLabel renders 1 active lease, N active leases, or No active leases
func ActiveLeasesLabel(count int) string {
	switch {
	case count <= 0:
		return noActiveLeases
	case count == 1:
		return "1 active lease"
	}
	return fmt.Sprintf("%d active leases", count)
}

// Address joins the non-blank address parts of a property
func Address(p viewmodels.Property) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{p.Street, p.Suburb, p.State, p.Postcode, p.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
