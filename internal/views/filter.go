// filter.go
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

// Package views renders container snapshots into JSON views and text lines.
// Views are pure: filtering and counting never refetch or mutate.
package views

import (
	"fmt"
	"strings"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// Filter is the property list status filter
type Filter string

const (
	FilterAll      Filter = "all"
	FilterOccupied Filter = "occupied"
	FilterVacant   Filter = "vacant"
)

// FilterOption is one filter button
type FilterOption struct {
	Value  Filter `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ParseFilter reads a filter value. Blank is all.
func ParseFilter(raw string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterOccupied, FilterVacant:
		return f, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q", raw)
}

// FilterProperties returns the properties matching f in their original order
func FilterProperties(properties []viewmodels.Property, f Filter) []viewmodels.Property {
	out := make([]viewmodels.Property, 0, len(properties))
	for _, p := range properties {
		if f == FilterAll || p.Status == string(f) {
			out = append(out, p)
		}
	}
	return out
}

// FilterOptions lists the filter buttons with f marked active
func FilterOptions(f Filter) []FilterOption {
	return []FilterOption{
		{Value: FilterAll, Label: "All", Active: f == FilterAll},
		{Value: FilterOccupied, Label: "Occupied", Active: f == FilterOccupied},
		{Value: FilterVacant, Label: "Vacant", Active: f == FilterVacant},
	}
}

// Summary counts a property collection
type Summary struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
	Vacant   int `json:"vacant"`
}

// Summarize derives the counts for properties
func Summarize(properties []viewmodels.Property) Summary {
	s := Summary{Total: len(properties)}
	for _, p := range properties {
		switch p.Status {
		case models.PropertyOccupied:
			s.Occupied++
		case models.PropertyVacant:
			s.Vacant++
		}
	}
	return s
}

// Line renders the summary as shown above the list
func (s Summary) Line() string {
	noun := "properties"
	if s.Total == 1 {
		noun = "property"
	}
	return fmt.Sprintf("%d %s total · %d occupied · %d vacant", s.Total, noun, s.Occupied, s.Vacant)
}
