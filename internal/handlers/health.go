// health.go
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

	"github.com/localnerve/propiq/internal/services"
	"github.com/localnerve/propiq/internal/utils"
	"github.com/localnerve/propiq/internal/views"
)

// Health handles GET /api/health
// @Summary Health check
// @Description Database and auth provider reachability
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *Handler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config.DBType, h.DB, h.Provider)
	status := fiber.StatusOK
	if !result.Healthy() {
		status = fiber.StatusServiceUnavailable
	}
	return utils.SuccessResponse(c, result, status)
}

// Nav handles GET /api/nav?path=/leases
// @Summary Navigation
// @Tags Nav
// @Produce json
// @Param path query string false "Current path"
// @Success 200 {array} views.NavItem
// @Router /nav [get]
func (h *Handler) Nav(c *fiber.Ctx) error {
	return c.JSON(views.Nav(c.Query("path", "/")))
}
