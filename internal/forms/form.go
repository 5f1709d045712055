// form.go
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

// Package forms holds the entity forms: raw field state, required-field
// validation, typed payload construction and the submit lifecycle.
package forms

import (
	"context"
	"log"
	"sync"

	"github.com/localnerve/propiq/internal/types"
)

// State is a snapshot of a form for rendering
type State[V any] struct {
	Values     V      `json:"values"`
	Editing    bool   `json:"editing"`
	Submitting bool   `json:"submitting"`
	Error      string `json:"error,omitempty"`
}

// Form owns the field values of one entity form.
// V is the raw field set, P the typed payload handed to the submit callback.
type Form[V any, P any] struct {
	mu         sync.Mutex
	defaults   V
	values     V
	editing    bool
	submitting bool
	message    string

	name    string
	failure string
	build   func(V) (P, error)
}

func newForm[V any, P any](name, failure string, defaults V, initial *V, build func(V) (P, error)) *Form[V, P] {
	f := &Form[V, P]{
		defaults: defaults,
		values:   defaults,
		name:     name,
		failure:  failure,
		build:    build,
	}
	if initial != nil {
		f.values = *initial
		f.editing = true
	}
	return f
}

// Set replaces the raw field values
func (f *Form[V, P]) Set(values V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
}

// Update edits the raw field values in place
func (f *Form[V, P]) Update(edit func(*V)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.values)
}

// State returns a snapshot of the form
func (f *Form[V, P]) State() State[V] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State[V]{
		Values:     f.values,
		Editing:    f.editing,
		Submitting: f.submitting,
		Error:      f.message,
	}
}

// Submit validates the fields and hands the payload to submit.
// A validation failure never calls submit. A failed submit keeps the fields.
// Create forms reset to defaults after success, edit forms keep their values.
func (f *Form[V, P]) Submit(ctx context.Context, submit func(context.Context, P) error) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return types.ErrSubmitInProgress
	}
	f.message = ""

	payload, err := f.build(f.values)
	if err != nil {
		f.message = err.Error()
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.mu.Unlock()

	err = submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		log.Printf("Failed to submit %s form: %v", f.name, err)
		f.message = f.failure
		return err
	}

	if !f.editing {
		f.values = f.defaults
	}
	return nil
}
