// auth.go
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

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/propiq/internal/auth"
	"github.com/localnerve/propiq/internal/middleware"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/utils"
)

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetSession handles GET /api/auth/session
// @Summary Current session
// @Description Resolve the session cookie into the auth gate state
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.GateSnapshot
// @Router /auth/session [get]
func (h *Handler) GetSession(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	gate := auth.NewGate(h.Provider, h.Sessions)
	gate.Mount(ctx, middleware.Credentials(c, h.Config.SessionCookie))
	h.setSessionCookie(c, gate.Session())

	return c.Status(fiber.StatusOK).JSON(gate.Snapshot())
}

// SignIn handles POST /api/auth/signin
// @Summary Sign in
// @Description Sign in with email and password. Sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsBody true "Credentials"
// @Success 200 {object} auth.GateSnapshot
// @Failure 400 {object} auth.GateSnapshot
// @Failure 401 {object} auth.GateSnapshot
// @Router /auth/signin [post]
func (h *Handler) SignIn(c *fiber.Ctx) error {
	return h.submitCredentials(c, (*auth.Gate).SignIn)
}

// SignUp handles POST /api/auth/signup
// @Summary Sign up
// @Description Register with email and password. 202 when the account must be confirmed first.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsBody true "Credentials"
// @Success 200 {object} auth.GateSnapshot
// @Success 202 {object} auth.GateSnapshot
// @Failure 400 {object} auth.GateSnapshot
// @Failure 401 {object} auth.GateSnapshot
// @Router /auth/signup [post]
func (h *Handler) SignUp(c *fiber.Ctx) error {
	return h.submitCredentials(c, (*auth.Gate).SignUp)
}

// SignOut handles POST /api/auth/signout
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /auth/signout [post]
func (h *Handler) SignOut(c *fiber.Ctx) error {
	if token := c.Cookies(h.Config.SessionCookie); token != "" {
		if err := h.Sessions.Delete(c.UserContext(), token); err != nil {
			return err
		}
	}
	c.ClearCookie(h.Config.SessionCookie)
	return utils.MessageResponse(c, "Signed out", fiber.StatusOK)
}

type gateSubmit func(g *auth.Gate, ctx context.Context, email, password string) error

func (h *Handler) submitCredentials(c *fiber.Ctx, submit gateSubmit) error {
	var body credentialsBody
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	gate := auth.NewGate(h.Provider, h.Sessions)
	gate.Mount(ctx, middleware.Credentials(c, h.Config.SessionCookie))

	err := submit(gate, ctx, body.Email, body.Password)
	snap := gate.Snapshot()

	var authErr *types.AuthError
	switch {
	case types.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(snap)
	case errors.Is(err, types.ErrSubmitInProgress):
		return c.Status(fiber.StatusConflict).JSON(snap)
	case errors.As(err, &authErr):
		return c.Status(fiber.StatusUnauthorized).JSON(snap)
	case err != nil:
		return err
	case snap.Notice:
		return c.Status(fiber.StatusAccepted).JSON(snap)
	}

	h.setSessionCookie(c, gate.Session())
	return c.Status(fiber.StatusOK).JSON(snap)
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, session *auth.Session) {
	middleware.SetSessionCookie(c, h.Config.SessionCookie, session)
}
