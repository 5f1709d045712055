// tenant.go
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

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/types"
)

const (
	tenantRequired = "First name and last name are required"
	tenantFailure  = "Could not add tenant. Please try again."
)

// TenantValues are the raw Add Tenant fields
type TenantValues struct {
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Phone     types.FlexString `json:"phone"`
}

// TenantPayload is a validated, trimmed tenant
type TenantPayload struct {
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

// TenantForm is the Add Tenant form
type TenantForm = Form[TenantValues, TenantPayload]

// NewTenantForm starts an Add Tenant form
func NewTenantForm() *TenantForm {
	return newForm("tenant", tenantFailure, TenantValues{}, nil, buildTenant)
}

func buildTenant(v TenantValues) (TenantPayload, error) {
	first := strings.TrimSpace(v.FirstName)
	last := strings.TrimSpace(v.LastName)
	if first == "" || last == "" {
		return TenantPayload{}, &types.ValidationError{Message: tenantRequired}
	}
	return TenantPayload{
		FirstName: first,
		LastName:  last,
		Email:     optional(v.Email),
		Phone:     optional(v.Phone.String()),
	}, nil
}

// Model builds the row to insert
func (p TenantPayload) Model() *models.Tenant {
	return &models.Tenant{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}
