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

package services

import (
	"context"
	"errors"

	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/types"
	"gorm.io/gorm"
)

// ListProperties selects properties, restricted to non-archived rows when activeOnly is set
func (s *Store) ListProperties(ctx context.Context, activeOnly bool) ([]models.Property, error) {
	var rows []models.Property

	query := s.read(ctx, "properties.list")
	if activeOnly {
		query = query.Where("is_archived = ?", false)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, queryError("properties.list", err)
	}
	return rows, nil
}

// GetProperty selects one property by identity, archived or not
func (s *Store) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var row models.Property

	err := s.read(ctx, "properties.get").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, queryError("properties.get", err)
	}
	return &row, nil
}

// InsertProperty creates a property; identity and timestamps are assigned on insert
func (s *Store) InsertProperty(ctx context.Context, property *models.Property) error {
	return mutationError("properties.insert", s.write(ctx).Create(property).Error)
}

// UpdateProperty applies a targeted field update to one property
func (s *Store) UpdateProperty(ctx context.Context, id string, fields map[string]interface{}) error {
	result := s.write(ctx).Model(&models.Property{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return mutationError("properties.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ArchiveProperty soft deletes a property by setting is_archived
func (s *Store) ArchiveProperty(ctx context.Context, id string) error {
	return s.UpdateProperty(ctx, id, map[string]interface{}{"is_archived": true})
}
