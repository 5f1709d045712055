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

// Package mappers flattens nested relational rows into view models.
// Every mapper is total: missing joins and null columns degrade to defaults.
package mappers

import (
	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// DefaultCountry fills a property's missing country
const DefaultCountry = "Australia"

// Property maps a properties row
func Property(row models.Property) viewmodels.Property {
	status := models.PropertyVacant
	if row.Status == models.PropertyOccupied {
		status = models.PropertyOccupied
	}

	country := str(row.Country)
	if country == "" {
		country = DefaultCountry
	}

	return viewmodels.Property{
		ID:         row.ID,
		Name:       row.Name,
		Street:     str(row.Street),
		Suburb:     row.Suburb,
		State:      str(row.State),
		Postcode:   str(row.Postcode),
		Country:    country,
		Status:     status,
		Bedrooms:   row.Bedrooms,
		Bathrooms:  row.Bathrooms,
		CarBays:    row.CarBays,
		Notes:      str(row.Notes),
		IsArchived: row.IsArchived,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// Properties maps a properties result set, never returning nil
func Properties(rows []models.Property) []viewmodels.Property {
	return mapAll(rows, Property)
}

// PropertyOptions lists properties as lease form choices
func PropertyOptions(properties []viewmodels.Property) []viewmodels.Option {
	options := make([]viewmodels.Option, 0, len(properties))
	for _, p := range properties {
		options = append(options, viewmodels.Option{ID: p.ID, Label: p.Name})
	}
	return options
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapAll[R any, V any](rows []R, fn func(R) V) []V {
	out := make([]V, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}
