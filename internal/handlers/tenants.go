// tenants.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/views"
)

// TenantPage is the tenant list with the Add Tenant form
type TenantPage struct {
	Form forms.State[forms.TenantValues] `json:"form"`
	View views.TenantListView            `json:"view"`
}

// ListTenants handles GET /api/tenants
// @Summary List tenants
// @Description Tenants with their active lease counts
// @Tags Tenants
// @Produce json
// @Success 200 {object} TenantPage
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tenants [get]
func (h *Handler) ListTenants(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list := containers.NewTenantList(h.Store)
	list.Mount(ctx)

	return c.JSON(TenantPage{
		Form: forms.NewTenantForm().State(),
		View: views.RenderTenantList(list.Snapshot()),
	})
}

// CreateTenant handles POST /api/tenants
// @Summary Add tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Param body body forms.TenantValues true "Tenant fields"
// @Success 201 {object} TenantPage
// @Failure 400 {object} TenantPage
// @Failure 500 {object} TenantPage
// @Security CookieAuth
// @Router /tenants [post]
func (h *Handler) CreateTenant(c *fiber.Ctx) error {
	form := forms.NewTenantForm()
	values := form.State().Values
	if err := parseBody(c, &values); err != nil {
		return err
	}
	form.Set(values)

	ctx, cancel := requestContext(c)
	defer cancel()

	list := containers.NewTenantList(h.Store)
	list.Mount(ctx)

	err := form.Submit(ctx, list.Create)
	return c.Status(submitStatus(err, true)).JSON(TenantPage{
		Form: form.State(),
		View: views.RenderTenantList(list.Snapshot()),
	})
}
