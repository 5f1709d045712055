// errors.go
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
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/propiq/internal/types"
	mssql "github.com/microsoft/go-mssqldb"
	"gorm.io/gorm"
)

func queryError(op string, err error) error {
	return remoteError(types.RemoteQuery, op, err)
}

func mutationError(op string, err error) error {
	return remoteError(types.RemoteMutation, op, err)
}

// remoteError converts a driver error into a structured RemoteError,
// pulling the code, details and hint out of the dialect specific error types.
func remoteError(kind types.RemoteKind, op string, err error) error {
	if err == nil {
		return nil
	}

	re := &types.RemoteError{
		Kind:    kind,
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}

	var pgErr *pgconn.PgError
	var myErr *mysql.MySQLError
	var msErr mssql.Error

	switch {
	case errors.As(err, &pgErr):
		re.Message = pgErr.Message
		re.Code = pgErr.Code
		re.Details = pgErr.Detail
		re.Hint = pgErr.Hint

	case errors.As(err, &myErr):
		re.Message = myErr.Message
		re.Code = fmt.Sprintf("%d", myErr.Number)
		if state := strings.Trim(string(myErr.SQLState[:]), "\x00"); state != "" {
			re.Details = "sqlstate " + state
		}

	case errors.As(err, &msErr):
		re.Message = msErr.Message
		re.Code = fmt.Sprintf("%d", msErr.Number)
		if msErr.ProcName != "" {
			re.Details = fmt.Sprintf("%s line %d", msErr.ProcName, msErr.LineNo)
		}

	case errors.Is(err, gorm.ErrDuplicatedKey):
		re.Code = "duplicate"

	case errors.Is(err, gorm.ErrForeignKeyViolated):
		re.Code = "foreign_key"
	}

	return re
}
