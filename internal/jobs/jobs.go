// jobs.go
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

// Package jobs runs the scheduled maintenance work: activating leases whose
// start date has arrived and purging expired sessions.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/localnerve/propiq/internal/metrics"
)

// LeaseActivator moves due pending leases to active
type LeaseActivator interface {
	ActivateDueLeases(ctx context.Context, now time.Time) (int64, error)
}

// SessionPurger removes expired sessions
type SessionPurger interface {
	Purge(ctx context.Context) (int64, error)
}

// Scheduler owns the cron runner
type Scheduler struct {
	cron     *cron.Cron
	leases   LeaseActivator
	sessions SessionPurger
	now      func() time.Time
}

// NewScheduler builds a scheduler. sessions may be nil.
func NewScheduler(leases LeaseActivator, sessions SessionPurger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		leases:   leases,
		sessions: sessions,
		now:      time.Now,
	}
}

// Start registers lease activation and session purging on their own
// schedules, skipping a job whose schedule is empty, then starts the runner
func (s *Scheduler) Start(leaseSchedule, purgeSchedule string) error {
	if leaseSchedule != "" {
		if _, err := s.cron.AddFunc(leaseSchedule, func() {
			log.Println("Running lease activation job...")
			s.ActivateLeases(context.Background())
		}); err != nil {
			return err
		}
		log.Printf("Lease activation scheduled: %s", leaseSchedule)
	}

	if purgeSchedule != "" && s.sessions != nil {
		if _, err := s.cron.AddFunc(purgeSchedule, func() {
			s.PurgeSessions(context.Background())
		}); err != nil {
			return err
		}
		log.Printf("Session purge scheduled: %s", purgeSchedule)
	}

	s.cron.Start()
	return nil
}

// Jobs is the number of registered jobs
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Stop halts the runner and waits for a running job, bounded by ctx
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Println("Scheduler stop timed out")
	}
}

// RunOnce activates due leases and purges expired sessions
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.ActivateLeases(ctx)
	s.PurgeSessions(ctx)
}

// ActivateLeases moves pending leases whose start date has arrived to active
func (s *Scheduler) ActivateLeases(ctx context.Context) {
	activated, err := s.leases.ActivateDueLeases(ctx, s.now().UTC())
	if err != nil {
		log.Printf("Error activating leases: %v", err)
		return
	}
	if activated > 0 {
		metrics.LeasesActivated.Add(float64(activated))
		log.Printf("Activated %d leases", activated)
	}
}

// PurgeSessions removes expired sessions
func (s *Scheduler) PurgeSessions(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	purged, err := s.sessions.Purge(ctx)
	if err != nil {
		log.Printf("Error purging sessions: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Purged %d expired sessions", purged)
	}
}
