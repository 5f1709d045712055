// common.go
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
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/propiq/internal/auth"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/utils"
	"github.com/localnerve/propiq/internal/views"
)

// requestContext scopes container and gate lifetimes to the request.
// Cancelling it unmounts everything mounted with it.
func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithCancel(c.UserContext())
}

// actor names the signed in account for audit logs
func actor(ctx context.Context) string {
	if s, ok := auth.SessionFrom(ctx); ok && s.Email != "" {
		return s.Email
	}
	return "unknown"
}

// parseFilter reads the property list filter from the query string
func parseFilter(c *fiber.Ctx) (views.Filter, error) {
	f, err := views.ParseFilter(c.Query("filter"))
	if err != nil {
		return f, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "filter must be all, occupied or vacant",
			Type:    "validation.filter",
		}
	}
	return f, nil
}

// parseBody decodes a JSON body onto values, leaving absent fields as they are
func parseBody(c *fiber.Ctx, values interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(values); err != nil {
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid input",
			Type:    "validation.input",
		}
	}
	return nil
}

// formResponse is a form submission result: the form state and the re-rendered view
type formResponse[S any, V any] struct {
	Form S `json:"form"`
	View V `json:"view"`
}

// submitStatus maps a form submission error to a status code
func submitStatus(err error, created bool) int {
	switch {
	case err == nil && created:
		return fiber.StatusCreated
	case err == nil:
		return fiber.StatusOK
	case types.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, types.ErrSubmitInProgress):
		return fiber.StatusConflict
	case errors.Is(err, types.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// notFoundID rejects the ids that name no record
func notFoundID(c *fiber.Ctx) (string, bool) {
	id := strings.TrimSpace(c.Params("id"))
	return id, id != "" && id != "undefined"
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return utils.NotFoundResponse(c, message)
}
