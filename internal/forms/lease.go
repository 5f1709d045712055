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

package forms

import (
	"strings"
	"time"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/types"
	"gorm.io/datatypes"
)

const (
	leaseRequired = "Property, tenant and start date are required"
	leaseFailure  = "Could not create lease. Please try again."
)

// LeaseValues are the raw Add Lease fields. TenantID takes one id or a list.
type LeaseValues struct {
	PropertyID    string                 `json:"propertyId"`
	TenantID      types.FlexList[string] `json:"tenantId"`
	StartDate     string                 `json:"startDate"`
	RentAmount    types.FlexString       `json:"rentAmount"`
	RentFrequency string                 `json:"rentFrequency"`
	BondAmount    types.FlexString       `json:"bondAmount"`
}

// LeasePayload is a validated lease with its tenant links
type LeasePayload struct {
	PropertyID    string
	TenantIDs     []string
	StartDate     time.Time
	RentAmount    float64
	RentFrequency string
	BondAmount    *float64
}

// LeaseForm is the Add Lease form
type LeaseForm = Form[LeaseValues, LeasePayload]

// LeaseDefaults are the create mode field values
func LeaseDefaults() LeaseValues {
	return LeaseValues{RentFrequency: models.RentWeekly}
}

// NewLeaseForm starts an Add Lease form
func NewLeaseForm() *LeaseForm {
	return newForm("lease", leaseFailure, LeaseDefaults(), nil, buildLease)
}

func buildLease(v LeaseValues) (LeasePayload, error) {
	propertyID := strings.TrimSpace(v.PropertyID)
	tenantIDs := types.CompactStrings(v.TenantID.Slice())
	start := strings.TrimSpace(v.StartDate)
	if propertyID == "" || len(tenantIDs) == 0 || start == "" {
		return LeasePayload{}, &types.ValidationError{Message: leaseRequired}
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return LeasePayload{}, &types.ValidationError{Message: leaseRequired}
	}

	rent := 0.0
	if amount := parseAmount(v.RentAmount.String()); amount != nil {
		rent = *amount
	}

	return LeasePayload{
		PropertyID:    propertyID,
		TenantIDs:     tenantIDs,
		StartDate:     startDate,
		RentAmount:    rent,
		RentFrequency: rentFrequency(v.RentFrequency),
		BondAmount:    parseAmount(v.BondAmount.String()),
	}, nil
}

func rentFrequency(raw string) string {
	switch f := strings.TrimSpace(raw); f {
	case models.RentWeekly, models.RentFortnightly, models.RentMonthly:
		return f
	}
	return models.RentWeekly
}

// Model builds the row to insert. New leases start pending.
func (p LeasePayload) Model() *models.Lease {
	return &models.Lease{
		PropertyID:    p.PropertyID,
		StartDate:     datatypes.Date(p.StartDate),
		RentAmount:    models.NewMoney(p.RentAmount),
		RentFrequency: p.RentFrequency,
		BondAmount:    models.NewNullMoney(p.BondAmount),
		Status:        models.LeasePending,
	}
}
