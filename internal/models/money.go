// money.go
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

package models

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Money is a wrapper around decimal.Decimal to allow for custom data type mapping
type Money struct {
	decimal.Decimal
}

// NewMoney creates Money from a float amount
func NewMoney(amount float64) Money {
	return Money{decimal.NewFromFloat(amount)}
}

// Value promotes the embedded Decimal's Value method
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Value()
}

// Scan promotes the embedded Decimal's Scan method
func (m *Money) Scan(value interface{}) error {
	return m.Decimal.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (Money) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return moneyColumnType(db)
}

// NullMoney is an optional amount, such as a lease bond
type NullMoney struct {
	decimal.NullDecimal
}

// NewNullMoney creates a valid NullMoney, or an empty one when amount is nil
func NewNullMoney(amount *float64) NullMoney {
	if amount == nil {
		return NullMoney{}
	}
	return NullMoney{decimal.NewNullDecimal(decimal.NewFromFloat(*amount))}
}

// Value promotes the embedded NullDecimal's Value method
func (m NullMoney) Value() (driver.Value, error) {
	return m.NullDecimal.Value()
}

// Scan promotes the embedded NullDecimal's Scan method
func (m *NullMoney) Scan(value interface{}) error {
	return m.NullDecimal.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (NullMoney) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return moneyColumnType(db)
}

func moneyColumnType(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "NUMERIC(12,2)"
	case "mysql", "sqlserver", "mssql":
		return "DECIMAL(12,2)"
	case "sqlite":
		return "NUMERIC"
	}
	return "DECIMAL(12,2)"
}
