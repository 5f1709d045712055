// capabilities.go
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

package views

// Capabilities lists the row actions a property list instance supports
type Capabilities struct {
	Edit          bool `json:"edit"`
	ManageTenants bool `json:"manageTenants"`
	Archive       bool `json:"archive"`
}

// Action is one row action
type Action struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

// ReadOnly supports no row actions
var ReadOnly = Capabilities{}

// FullAccess supports every row action
var FullAccess = Capabilities{Edit: true, ManageTenants: true, Archive: true}

// Any reports whether the row actions should render at all
func (c Capabilities) Any() bool {
	return c.Edit || c.ManageTenants || c.Archive
}

// Actions lists the enabled actions for a property
func (c Capabilities) Actions(propertyID string) []Action {
	base := "/api/properties/" + propertyID
	actions := make([]Action, 0, 3)
	if c.Edit {
		actions = append(actions, Action{Name: "edit", Label: "Update", Method: "GET", Href: base + "/edit"})
	}
	if c.ManageTenants {
		actions = append(actions, Action{Name: "tenants", Label: "Tenants & leases", Method: "GET", Href: "/api/leases?property=" + propertyID})
	}
	if c.Archive {
		actions = append(actions, Action{Name: "archive", Label: "Archive", Method: "POST", Href: base + "/archive"})
	}
	return actions
}
