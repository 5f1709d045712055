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

package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/mappers"
	"github.com/localnerve/propiq/internal/viewmodels"
	"github.com/localnerve/propiq/internal/views"
)

// LeaseOptions are the choices offered by the Add Lease form
type LeaseOptions struct {
	Properties []viewmodels.Option `json:"properties"`
	Tenants    []viewmodels.Option `json:"tenants"`
}

// LeasePage is the lease list with the Add Lease form
type LeasePage struct {
	Form    forms.State[forms.LeaseValues] `json:"form"`
	Options LeaseOptions                   `json:"options"`
	View    views.LeaseListView            `json:"view"`
}

// ListLeases handles GET /api/leases
// @Summary List leases
// @Description Leases with their property and tenants, plus the Add Lease form options
// @Tags Leases
// @Produce json
// @Param property query string false "Only leases of this property"
// @Success 200 {object} LeasePage
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /leases [get]
func (h *Handler) ListLeases(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list := containers.NewLeaseList(h.Store)
	list.Mount(ctx)

	return c.JSON(LeasePage{
		Form:    forms.NewLeaseForm().State(),
		Options: h.leaseOptions(ctx),
		View:    views.RenderLeaseList(list.Snapshot(), c.Query("property")),
	})
}

// CreateLease handles POST /api/leases
// @Summary Add lease
// @Description Submit the Add Lease form. tenantId takes one id or a list.
// @Tags Leases
// @Accept json
// @Produce json
// @Param body body forms.LeaseValues true "Lease fields"
// @Success 201 {object} LeasePage
// @Failure 400 {object} LeasePage
// @Failure 500 {object} LeasePage
// @Security CookieAuth
// @Router /leases [post]
func (h *Handler) CreateLease(c *fiber.Ctx) error {
	form := forms.NewLeaseForm()
	values := form.State().Values
	if err := parseBody(c, &values); err != nil {
		return err
	}
	form.Set(values)

	ctx, cancel := requestContext(c)
	defer cancel()

	list := containers.NewLeaseList(h.Store)
	list.Mount(ctx)

	err := form.Submit(ctx, list.Create)
	return c.Status(submitStatus(err, true)).JSON(LeasePage{
		Form:    form.State(),
		Options: h.leaseOptions(ctx),
		View:    views.RenderLeaseList(list.Snapshot(), ""),
	})
}

// leaseOptions mounts the property and tenant containers for the form choices.
// A container that failed to load offers no options.
func (h *Handler) leaseOptions(ctx context.Context) LeaseOptions {
	properties := containers.NewPropertyList(h.Store)
	properties.Mount(ctx)
	tenants := containers.NewTenantList(h.Store)
	tenants.Mount(ctx)

	return LeaseOptions{
		Properties: mappers.PropertyOptions(properties.Snapshot().Items),
		Tenants:    mappers.TenantOptions(tenants.Snapshot().Items),
	}
}
