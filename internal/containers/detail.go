// detail.go
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
	"errors"
	"log"
	"sync"

	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/mappers"
	"github.com/localnerve/propiq/internal/metrics"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/viewmodels"
)

// DetailState is the property detail fetch state
type DetailState string

const (
	DetailLoading  DetailState = "loading"
	DetailReady    DetailState = "ready"
	DetailNotFound DetailState = "not_found"
	DetailError    DetailState = "error"
)

// ArchiveState tracks an in-flight archive from the detail view
type ArchiveState string

const (
	ArchiveIdle    ArchiveState = "idle"
	ArchiveWorking ArchiveState = "working"
)

const (
	detailFailure  = "Could not load this property. Please try again."
	detailNotFound = "This property could not be found or you don't have access to it."
)

// ErrAlreadyArchived refuses a second archive of the same property
var ErrAlreadyArchived = errors.New("property is already archived")

// DetailSnapshot is what the detail and edit views render
type DetailSnapshot struct {
	State    DetailState          `json:"state"`
	Archive  ArchiveState         `json:"archive"`
	Property *viewmodels.Property `json:"property,omitempty"`
	Message  string               `json:"message,omitempty"`
}

// PropertyDetail loads one property, archived or not, and owns its edit and archive writes
type PropertyDetail struct {
	id    string
	store PropertyStore

	mu       sync.Mutex
	alive    bool
	stop     func() bool
	state    DetailState
	archive  ArchiveState
	property *viewmodels.Property
}

// NewPropertyDetail builds an unmounted detail container for id
func NewPropertyDetail(store PropertyStore, id string) *PropertyDetail {
	return &PropertyDetail{
		id:      id,
		store:   store,
		state:   DetailLoading,
		archive: ArchiveIdle,
	}
}

// Mount marks the container live and loads the property
func (d *PropertyDetail) Mount(ctx context.Context) {
	d.mu.Lock()
	d.alive = true
	d.stop = context.AfterFunc(ctx, d.Unmount)
	d.mu.Unlock()

	d.Reload(ctx)
}

// Unmount drops every later state update
func (d *PropertyDetail) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alive = false
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}

// Reload fetches the property. A blank id resolves to not_found without a query.
func (d *PropertyDetail) Reload(ctx context.Context) {
	if d.id == "" || d.id == "undefined" {
		d.set(func() { d.state = DetailNotFound })
		return
	}

	if !d.set(func() { d.state = DetailLoading }) {
		return
	}

	row, err := d.store.GetProperty(ctx, d.id)
	metrics.ListFetches.WithLabelValues("property", metrics.Outcome(err)).Inc()

	switch {
	case errors.Is(err, types.ErrNotFound):
		d.set(func() {
			d.property = nil
			d.state = DetailNotFound
		})
	case err != nil:
		log.Printf("Error loading property details: %v", err)
		d.set(func() { d.state = DetailError })
	default:
		vm := mappers.Property(*row)
		d.set(func() {
			d.property = &vm
			d.state = DetailReady
		})
	}
}

// Snapshot returns the current state
func (d *PropertyDetail) Snapshot() DetailSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := DetailSnapshot{State: d.state, Archive: d.archive}
	switch d.state {
	case DetailReady:
		p := *d.property
		snap.Property = &p
	case DetailError:
		snap.Message = detailFailure
	case DetailNotFound:
		snap.Message = detailNotFound
	}
	return snap
}

// Update applies an Edit Property submission then reloads the property
func (d *PropertyDetail) Update(ctx context.Context, payload forms.PropertyPayload) error {
	if d.id == "" || d.id == "undefined" {
		return types.ErrNotFound
	}

	err := d.store.UpdateProperty(ctx, d.id, payload.Fields())
	metrics.Mutations.WithLabelValues("property", "update", metrics.Outcome(err)).Inc()
	if err != nil {
		log.Printf("Error updating property: %v", err)
		return err
	}

	d.Reload(ctx)
	return nil
}

// Archive confirms then archives the loaded property. It is refused while
// nothing is loaded, when the property is already archived, or while another
// archive is working.
func (d *PropertyDetail) Archive(ctx context.Context, confirm Confirmer) (bool, error) {
	d.mu.Lock()
	switch {
	case d.state != DetailReady || d.property == nil:
		d.mu.Unlock()
		return false, types.ErrNotFound
	case d.property.IsArchived:
		d.mu.Unlock()
		return false, ErrAlreadyArchived
	case d.archive == ArchiveWorking:
		d.mu.Unlock()
		return false, types.ErrSubmitInProgress
	}
	d.archive = ArchiveWorking
	d.mu.Unlock()

	ok, err := confirm.Confirm(ctx, ArchivePrompt)
	if err == nil && ok {
		err = d.store.ArchiveProperty(ctx, d.id)
		metrics.Mutations.WithLabelValues("property", "archive", metrics.Outcome(err)).Inc()
	}

	// Reset even after unmount so a remount is not stuck working
	d.mu.Lock()
	d.archive = ArchiveIdle
	d.mu.Unlock()

	if !ok && err == nil {
		return false, nil
	}

	if err != nil {
		log.Printf("Error archiving property: %v", err)
		return false, err
	}

	d.Reload(ctx)
	return true, nil
}

func (d *PropertyDetail) set(update func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.alive {
		return false
	}
	update()
	return true
}
