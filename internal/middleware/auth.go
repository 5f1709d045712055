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

package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/propiq/internal/auth"
	"github.com/localnerve/propiq/internal/types"
)

// ProviderCookie is the cookie the Authorizer service sets for its own session
const ProviderCookie = "cookie_session"

// SessionLocal is the fiber.Ctx locals key holding the *auth.Session
const SessionLocal = "session"

// Credentials reads what the client presents to the auth gate
func Credentials(c *fiber.Ctx, sessionCookie string) auth.Credentials {
	return auth.Credentials{
		Session:  c.Cookies(sessionCookie),
		Provider: c.Cookies(ProviderCookie),
	}
}

// RequireSession mounts an auth gate for the request and lets it through only
// when the gate settles signed in. The session is placed on the request context.
func RequireSession(provider auth.Provider, sessions auth.Sessions, sessionCookie string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(c.UserContext())
		defer cancel()

		gate := auth.NewGate(provider, sessions)
		gate.Mount(ctx, Credentials(c, sessionCookie))

		session := gate.Session()
		if session == nil {
			code := fiber.StatusUnauthorized
			message := "Sign in to continue"
			if c.Cookies(sessionCookie) != "" || c.Cookies(ProviderCookie) != "" {
				code = fiber.StatusForbidden
				message = "Invalid or expired session"
			}
			return &types.CustomError{
				Code:    code,
				Message: message,
				Type:    "auth.session",
			}
		}

		// A session opened from the provider cookie goes back to the client
		SetSessionCookie(c, sessionCookie, session)

		c.Locals(SessionLocal, session)
		c.SetUserContext(auth.WithSession(c.UserContext(), session))
		return c.Next()
	}
}

// SetSessionCookie sends the session token unless the client already holds it
func SetSessionCookie(c *fiber.Ctx, name string, session *auth.Session) {
	if session == nil || session.Token == "" || session.Token == c.Cookies(name) {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
