// containers_test.go
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

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeComment(t *testing.T) {
	assert.Equal(t, "CREATE TABLE t (", excludeComment("CREATE TABLE t ( -- the table"))
	assert.Equal(t, "", excludeComment("-- only a comment"))
	assert.Equal(t, "status VARCHAR(16) DEFAULT '--'", excludeComment("status VARCHAR(16) DEFAULT '--'"))
	assert.Equal(t, `SELECT "a--b" `, excludeComment(`SELECT "a--b" -- trailing`))
}
