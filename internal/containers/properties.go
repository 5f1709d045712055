// properties.go
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

package containers

import (
	"context"
	"log"

	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/mappers"
	"github.com/localnerve/propiq/internal/metrics"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// PropertyList lists the active properties and owns their create and archive writes
type PropertyList struct {
	*List[viewmodels.Property]
	store PropertyStore
}

// NewPropertyList builds an unmounted property list container
func NewPropertyList(store PropertyStore) *PropertyList {
	fetch := func(ctx context.Context) ([]viewmodels.Property, error) {
		rows, err := store.ListProperties(ctx, true)
		if err != nil {
			return nil, err
		}
		return mappers.Properties(rows), nil
	}

	return &PropertyList{
		List:  newList("properties", "Could not load properties. Please try again.", fetch),
		store: store,
	}
}

// Create inserts a property then re-fetches the list
func (c *PropertyList) Create(ctx context.Context, payload forms.PropertyPayload) error {
	err := c.store.InsertProperty(ctx, payload.Model())
	metrics.Mutations.WithLabelValues("property", "insert", metrics.Outcome(err)).Inc()
	if err != nil {
		log.Printf("Error inserting property: %v", err)
		return err
	}

	c.Reload(ctx)
	return nil
}

// Archive asks for confirmation, sets is_archived on the property, then re-fetches.
// A declined confirmation issues no calls and reports false.
func (c *PropertyList) Archive(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	ok, err := confirm.Confirm(ctx, ArchivePrompt)
	if err != nil || !ok {
		return false, err
	}

	err = c.store.ArchiveProperty(ctx, id)
	metrics.Mutations.WithLabelValues("property", "archive", metrics.Outcome(err)).Inc()
	if err != nil {
		log.Printf("Error archiving property: %v", err)
		return false, err
	}

	c.Reload(ctx)
	return true, nil
}
