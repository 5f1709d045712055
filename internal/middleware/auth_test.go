// auth_test.go
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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/propiq/internal/auth"
	"github.com/localnerve/propiq/internal/models"
	"github.com/localnerve/propiq/internal/testutil"
	"github.com/localnerve/propiq/internal/types"
)

const sessionCookie = "propiq_session"

// cookieProvider accepts one provider cookie value
type cookieProvider struct {
	cookie string
}

func (p *cookieProvider) Name() string { return "cookie" }

func (p *cookieProvider) SignIn(context.Context, string, string) (*auth.Identity, error) {
	return nil, &types.AuthError{Message: "not supported"}
}

func (p *cookieProvider) SignUp(context.Context, string, string) (*auth.Identity, error) {
	return nil, &types.AuthError{Message: "not supported"}
}

func (p *cookieProvider) Ping(context.Context) error { return nil }

func (p *cookieProvider) Validate(_ context.Context, credential string) (*auth.Identity, error) {
	if credential != p.cookie {
		return nil, nil
	}
	return &auth.Identity{UserID: "u1", Email: "owner@example.com"}, nil
}

func setupGated(t *testing.T) (*fiber.App, *auth.SessionStore) {
	t.Helper()
	sessions := auth.NewSessionStore(testutil.NewDB(t), time.Hour)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if ce, ok := err.(*types.CustomError); ok {
				return c.Status(ce.Code).SendString(ce.Message)
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	app.Get("/private", RequireSession(&cookieProvider{cookie: "abc"}, sessions, sessionCookie), func(c *fiber.Ctx) error {
		session := c.Locals(SessionLocal).(*auth.Session)
		return c.SendString(session.Email)
	})
	return app, sessions
}

func TestRequireSessionWithoutCookies(t *testing.T) {
	app, _ := setupGated(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSessionRejectsUnknownCookie(t *testing.T) {
	app, _ := setupGated(t)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: ProviderCookie, Value: "nope"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireSessionProviderCookieOpensOneSession(t *testing.T) {
	app, sessions := setupGated(t)

	var token string
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: ProviderCookie, Value: "abc"})
		if token != "" {
			req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
		}

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		for _, c := range resp.Cookies() {
			if c.Name == sessionCookie {
				require.Empty(t, token, "session cookie sent again on request %d", i+1)
				token = c.Value
				assert.True(t, c.HttpOnly)
			}
		}
		require.NotEmpty(t, token, "no session cookie after request %d", i+1)
	}

	var count int64
	require.NoError(t, sessions.DB.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
