// leases.go
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

package services

import (
	"context"
	"time"

	"github.com/localnerve/propiq/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListLeases selects every lease with its property and tenants joined
func (s *Store) ListLeases(ctx context.Context) ([]models.Lease, error) {
	var rows []models.Lease

	err := s.read(ctx, "leases.list").
		Preload("Property").
		Preload("LeaseTenants.Tenant").
		Find(&rows).Error
	if err != nil {
		return nil, queryError("leases.list", err)
	}
	return rows, nil
}

// InsertLease creates a lease and links each tenant in one transaction
func (s *Store) InsertLease(ctx context.Context, lease *models.Lease, tenantIDs []string) error {
	err := s.write(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Property", "LeaseTenants").Create(lease).Error; err != nil {
			return err
		}

		if len(tenantIDs) == 0 {
			return nil
		}

		links := make([]models.LeaseTenant, 0, len(tenantIDs))
		for _, tenantID := range tenantIDs {
			links = append(links, models.LeaseTenant{LeaseID: lease.ID, TenantID: tenantID})
		}
		return tx.Omit("Lease", "Tenant").Create(&links).Error
	})

	return mutationError("leases.insert", err)
}

// ActivateDueLeases moves pending leases whose start date has arrived to active
func (s *Store) ActivateDueLeases(ctx context.Context, now time.Time) (int64, error) {
	result := s.write(ctx).Model(&models.Lease{}).
		Where("status = ? AND start_date <= ?", models.LeasePending, datatypes.Date(now)).
		Update("status", models.LeaseActive)
	if result.Error != nil {
		return 0, mutationError("leases.activate", result.Error)
	}
	return result.RowsAffected, nil
}
