// metrics.go
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

// Package metrics holds the application counters exported next to the
// HTTP metrics on /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "propiq"

var (
	// ListFetches counts container fetches by list and outcome
	ListFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_fetches_total",
		Help:      "List container fetches by list and outcome.",
	}, []string{"list", "outcome"})

	// Mutations counts inserts and updates by entity, operation and outcome
	Mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Data service writes by entity, operation and outcome.",
	}, []string{"entity", "op", "outcome"})

	// AuthAttempts counts sign-in and sign-up attempts by outcome
	AuthAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Auth gate submissions by action and outcome.",
	}, []string{"action", "outcome"})

	// LeasesActivated counts leases moved to active by the scheduler
	LeasesActivated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leases_activated_total",
		Help:      "Pending leases activated by the lease activation job.",
	})
)

// Outcome labels
const (
	OK       = "ok"
	Failed   = "error"
	Invalid  = "invalid"
	Deferred = "deferred"
)

// Register adds the application collectors to reg. Re-registering is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{ListFetches, Mutations, AuthAttempts, LeasesActivated} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

// Outcome labels an error
func Outcome(err error) string {
	if err != nil {
		return Failed
	}
	return OK
}
