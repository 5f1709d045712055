// store.go
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

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// Store is the relational data service behind every container.
// Reads and writes are keyed by identity and return *types.RemoteError on failure.
type Store struct {
	DB *gorm.DB
}

// NewStore wraps an open GORM connection
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// read returns a silent, tagged session for list queries
func (s *Store) read(ctx context.Context, tag string) *gorm.DB {
	return s.DB.WithContext(ctx).
		Session(&gorm.Session{Logger: s.DB.Logger.LogMode(logger.Silent)}).
		Clauses(hints.Comment("select", "propiq:"+tag))
}

func (s *Store) write(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}
