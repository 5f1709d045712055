// property.go
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
	"github.com/localnerve/propiq/internal/viewmodels"
)

const (
	propertyRequired = "name and suburb required"
	propertyFailure  = "Could not save property. Please try again."
)

// PropertyValues are the raw Add/Edit Property fields
type PropertyValues struct {
	Name      string           `json:"name"`
	Street    string           `json:"street"`
	Suburb    string           `json:"suburb"`
	State     string           `json:"state"`
	Postcode  types.FlexString `json:"postcode"`
	Country   string           `json:"country"`
	Status    string           `json:"status"`
	Bedrooms  types.FlexString `json:"bedrooms"`
	Bathrooms types.FlexString `json:"bathrooms"`
	CarBays   types.FlexString `json:"carBays"`
	Notes     string           `json:"notes"`
}

// PropertyPayload is a validated, trimmed property
type PropertyPayload struct {
	Name      string
	Street    *string
	Suburb    string
	State     *string
	Postcode  *string
	Country   *string
	Status    string
	Bedrooms  *int
	Bathrooms *int
	CarBays   *int
	Notes     *string
}

// PropertyForm is the Add/Edit Property form
type PropertyForm = Form[PropertyValues, PropertyPayload]

// PropertyDefaults are the create mode field values
func PropertyDefaults(country string) PropertyValues {
	return PropertyValues{Country: country, Status: models.PropertyOccupied}
}

// NewPropertyForm starts a create form, or an edit form when initialValues is set
func NewPropertyForm(defaultCountry string, initialValues *PropertyValues) *PropertyForm {
	build := func(v PropertyValues) (PropertyPayload, error) {
		return buildProperty(v, defaultCountry)
	}
	return newForm("property", propertyFailure, PropertyDefaults(defaultCountry), initialValues, build)
}

// PropertyValuesFrom seeds an edit form from a stored property
func PropertyValuesFrom(p viewmodels.Property) PropertyValues {
	return PropertyValues{
		Name:      p.Name,
		Street:    p.Street,
		Suburb:    p.Suburb,
		State:     p.State,
		Postcode:  types.FlexString(p.Postcode),
		Country:   p.Country,
		Status:    p.Status,
		Bedrooms:  types.FlexString(formatCount(p.Bedrooms)),
		Bathrooms: types.FlexString(formatCount(p.Bathrooms)),
		CarBays:   types.FlexString(formatCount(p.CarBays)),
		Notes:     p.Notes,
	}
}

func buildProperty(v PropertyValues, defaultCountry string) (PropertyPayload, error) {
	name := strings.TrimSpace(v.Name)
	suburb := strings.TrimSpace(v.Suburb)
	if name == "" || suburb == "" {
		return PropertyPayload{}, &types.ValidationError{Message: propertyRequired}
	}

	status := models.PropertyVacant
	if strings.TrimSpace(v.Status) == models.PropertyOccupied {
		status = models.PropertyOccupied
	}

	country := optional(v.Country)
	if country == nil {
		country = optional(defaultCountry)
	}

	return PropertyPayload{
		Name:      name,
		Street:    optional(v.Street),
		Suburb:    suburb,
		State:     optional(v.State),
		Postcode:  optional(v.Postcode.String()),
		Country:   country,
		Status:    status,
		Bedrooms:  parseCount(v.Bedrooms.String()),
		Bathrooms: parseCount(v.Bathrooms.String()),
		CarBays:   parseCount(v.CarBays.String()),
		Notes:     optional(v.Notes),
	}, nil
}

// Model builds the row to insert
func (p PropertyPayload) Model() *models.Property {
	return &models.Property{
		Name:      p.Name,
		Street:    p.Street,
		Suburb:    p.Suburb,
		State:     p.State,
		Postcode:  p.Postcode,
		Country:   p.Country,
		Status:    p.Status,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		CarBays:   p.CarBays,
		Notes:     p.Notes,
	}
}

// Fields builds the targeted update. Optional columns left blank are cleared.
func (p PropertyPayload) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":      p.Name,
		"street":    p.Street,
		"suburb":    p.Suburb,
		"state":     p.State,
		"postcode":  p.Postcode,
		"country":   p.Country,
		"status":    p.Status,
		"bedrooms":  p.Bedrooms,
		"bathrooms": p.Bathrooms,
		"car_bays":  p.CarBays,
		"notes":     p.Notes,
	}
}
