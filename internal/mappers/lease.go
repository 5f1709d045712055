// lease.go
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

package mappers

import (
	"strings"
	"time"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// UnknownProperty names a lease whose property join is missing
const UnknownProperty = "Unknown property"

// DateLayout is the wire form of a lease start date
const DateLayout = "2006-01-02"

// Lease maps a leases row joined to properties and lease_tenants.tenants
func Lease(row models.Lease) viewmodels.Lease {
	propertyName := UnknownProperty
	if row.Property != nil {
		propertyName = row.Property.Name
	}

	frequency := row.RentFrequency
	if frequency == "" {
		frequency = models.RentWeekly
	}

	status := row.Status
	if status == "" {
		status = models.LeasePending
	}

	var startDate string
	if start := time.Time(row.StartDate); !start.IsZero() {
		startDate = start.Format(DateLayout)
	}

	var bond *float64
	if row.BondAmount.Valid {
		amount := row.BondAmount.Decimal.InexactFloat64()
		bond = &amount
	}

	return viewmodels.Lease{
		ID:            row.ID,
		PropertyID:    row.PropertyID,
		PropertyName:  propertyName,
		StartDate:     startDate,
		RentAmount:    row.RentAmount.InexactFloat64(),
		RentFrequency: frequency,
		BondAmount:    bond,
		Status:        status,
		TenantNames:   tenantNames(row.LeaseTenants),
	}
}

// Leases maps a leases result set, never returning nil
func Leases(rows []models.Lease) []viewmodels.Lease {
	return mapAll(rows, Lease)
}

func tenantNames(links []models.LeaseTenant) []string {
	names := make([]string, 0, len(links))
	for _, link := range links {
		if link.Tenant == nil {
			continue
		}
		if name := joinName(link.Tenant.FirstName, link.Tenant.LastName); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
