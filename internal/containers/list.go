// list.go
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

// Package containers holds the list and detail containers. A container is
// mounted for one request, fetches immediately, and re-fetches after every
// successful write. Results that arrive after Unmount are dropped.
package containers

import (
	"context"
	"log"
	"sync"

	"github.com/localnerve/propiq/internal/metrics"
)

// LoadState is a list container's fetch state. There is no idle state.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateError   LoadState = "error"
	StateSuccess LoadState = "success"
)

// Snapshot is what a view renders from a list container
type Snapshot[T any] struct {
	State   LoadState `json:"state"`
	Items   []T       `json:"items"`
	Message string    `json:"message,omitempty"`
}

// List is the load/error/success state machine shared by every list container
type List[T any] struct {
	name    string
	failure string
	fetch   func(context.Context) ([]T, error)

	mu    sync.Mutex
	alive bool
	state LoadState
	items []T
	stop  func() bool
}

func newList[T any](name, failure string, fetch func(context.Context) ([]T, error)) *List[T] {
	return &List[T]{
		name:    name,
		failure: failure,
		fetch:   fetch,
		state:   StateLoading,
	}
}

// Mount marks the container live and starts the first fetch.
// The container unmounts itself when ctx is done.
func (l *List[T]) Mount(ctx context.Context) {
	l.mu.Lock()
	l.alive = true
	l.stop = context.AfterFunc(ctx, l.Unmount)
	l.mu.Unlock()

	l.Reload(ctx)
}

// Unmount drops every later state update
func (l *List[T]) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive = false
	if l.stop != nil {
		l.stop()
		l.stop = nil
	}
}

// Mounted reports whether the container still accepts state updates
func (l *List[T]) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alive
}

// Reload runs the full fetch and replaces the collection.
// Failures are logged and leave the container in the error state.
func (l *List[T]) Reload(ctx context.Context) {
	if !l.set(func() { l.state = StateLoading }) {
		return
	}

	items, err := l.fetch(ctx)
	metrics.ListFetches.WithLabelValues(l.name, metrics.Outcome(err)).Inc()

	if err != nil {
		log.Printf("Error loading %s: %v", l.name, err)
		l.set(func() { l.state = StateError })
		return
	}

	l.set(func() {
		l.items = items
		l.state = StateSuccess
	})
}

// Snapshot returns the current state. Items are only populated on success.
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot[T]{State: l.state, Items: []T{}}
	switch l.state {
	case StateSuccess:
		snap.Items = append(snap.Items, l.items...)
	case StateError:
		snap.Message = l.failure
	}
	return snap
}

// set applies update while mounted
func (l *List[T]) set(update func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.alive {
		return false
	}
	update()
	return true
}
